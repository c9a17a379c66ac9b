package tqa

import "testing"

const sampleRESX = `<root>
	<data name="greeting" xml:space="preserve">
		<value>Hello</value>
		<comment>shown on the home screen</comment>
	</data>
</root>`

func TestDecodeRESX(t *testing.T) {
	file, err := decodeRESX("Resources.resx", []byte(sampleRESX))
	if err != nil {
		t.Fatalf("decodeRESX failed: %v", err)
	}
	if len(file.Units) != 1 {
		t.Fatalf("got %d units, want 1", len(file.Units))
	}
	u := file.Units[0]
	if u.Key != "greeting" || u.Source != "Hello" || u.Notes != "shown on the home screen" {
		t.Errorf("unexpected unit: %+v", u)
	}
}

func TestDecodeRESX_MissingName(t *testing.T) {
	_, err := decodeRESX("bad.resx", []byte(`<root><data><value>x</value></data></root>`))
	if err == nil {
		t.Fatal("expected an error for <data> missing name")
	}
}
