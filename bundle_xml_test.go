package tqa

import "testing"

func TestDecodeGenericXML(t *testing.T) {
	data := `<resources>
		<string name="app_name">My App</string>
		<string-array name="days">
			<item>Monday</item>
			<item>Tuesday</item>
		</string-array>
	</resources>`

	file, err := decodeGenericXML("strings.xml", []byte(data))
	if err != nil {
		t.Fatalf("decodeGenericXML failed: %v", err)
	}

	if len(file.Units) != 3 {
		t.Fatalf("got %d units, want 3", len(file.Units))
	}

	want := []struct{ key, source string }{
		{"app_name", "My App"},
		{"days[0]", "Monday"},
		{"days[1]", "Tuesday"},
	}
	for i, w := range want {
		if file.Units[i].Key != w.key || file.Units[i].Source != w.source {
			t.Errorf("unit %d = %+v, want key=%q source=%q", i, file.Units[i], w.key, w.source)
		}
	}
}

func TestDecodeGenericXML_MissingName(t *testing.T) {
	_, err := decodeGenericXML("bad.xml", []byte(`<resources><string>no name</string></resources>`))
	if err == nil {
		t.Fatal("expected an error for <string> missing name")
	}
}
