package tqa

import "testing"

func TestDecodeJSON(t *testing.T) {
	data := []byte(`{"a":{"b":"Hello {name}!","c":"Save"}}`)

	file, err := decodeJSON("strings.json", data)
	if err != nil {
		t.Fatalf("decodeJSON failed: %v", err)
	}

	if len(file.Units) != 2 {
		t.Fatalf("got %d units, want 2", len(file.Units))
	}

	want := map[string]string{"a.b": "Hello {name}!", "a.c": "Save"}
	for _, u := range file.Units {
		src, ok := want[u.Key]
		if !ok {
			t.Errorf("unexpected key %q", u.Key)
			continue
		}
		if u.Source != src {
			t.Errorf("key %q: source = %q, want %q", u.Key, u.Source, src)
		}
		if u.Target != "" {
			t.Errorf("key %q: target = %q, want empty", u.Key, u.Target)
		}
	}

	if file.Units[0].Key != "a.b" || file.Units[1].Key != "a.c" {
		t.Errorf("keys not in sorted document order: %q, %q", file.Units[0].Key, file.Units[1].Key)
	}
}

func TestDecodeJSON_Wrapper(t *testing.T) {
	data := []byte(`{"translations":{"greeting":"Hi"},"ignored_meta":"x"}`)

	file, err := decodeJSON("bundle.json", data)
	if err != nil {
		t.Fatalf("decodeJSON failed: %v", err)
	}
	if len(file.Units) != 1 || file.Units[0].Key != "greeting" {
		t.Fatalf("expected single unwrapped unit 'greeting', got %+v", file.Units)
	}
}

func TestDecodeJSON_Invalid(t *testing.T) {
	_, err := decodeJSON("bad.json", []byte(`{not valid`))
	if err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
	if _, ok := err.(*ParseError); !ok {
		t.Errorf("expected *ParseError, got %T", err)
	}
}
