package tqa

import "testing"

const sampleXLIFF = `<?xml version="1.0"?>
<xliff version="1.2">
  <file source-language="en" target-language="fr" datatype="plaintext">
    <body>
      <trans-unit id="greeting">
        <source>Hello <g id="1">world</g></source>
        <target>Bonjour <g id="1">monde</g></target>
        <note>friendly greeting</note>
      </trans-unit>
      <trans-unit id="save">
        <source>Save</source>
        <target>Sauvegarder</target>
      </trans-unit>
    </body>
  </file>
</xliff>`

func TestDecodeXLIFF(t *testing.T) {
	file, err := decodeXLIFF("bundle.xliff", []byte(sampleXLIFF), "xliff")
	if err != nil {
		t.Fatalf("decodeXLIFF failed: %v", err)
	}

	if file.SourceLanguage != "en" || file.TargetLanguage != "fr" {
		t.Errorf("languages = %q/%q, want en/fr", file.SourceLanguage, file.TargetLanguage)
	}
	if len(file.Units) != 2 {
		t.Fatalf("got %d units, want 2", len(file.Units))
	}

	u := file.Units[0]
	if u.Key != "greeting" || u.Source != "Hello world" || u.Target != "Bonjour monde" {
		t.Errorf("unexpected first unit: %+v", u)
	}
	if u.Notes != "friendly greeting" {
		t.Errorf("notes = %q, want %q", u.Notes, "friendly greeting")
	}
}

func TestDecodeXLIFF_MissingID(t *testing.T) {
	data := `<xliff><file source-language="en"><body>
		<trans-unit><source>x</source><target>y</target></trans-unit>
	</body></file></xliff>`

	_, err := decodeXLIFF("bad.xliff", []byte(data), "xliff")
	if err == nil {
		t.Fatal("expected an error for a trans-unit missing id")
	}
}

func TestDecodeXLIFF_MalformedXML(t *testing.T) {
	_, err := decodeXLIFF("bad.xliff", []byte("<xliff><file>"), "xliff")
	if err == nil {
		t.Fatal("expected an error for malformed XML")
	}
}
