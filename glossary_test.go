package tqa

import "testing"

func TestLoadGlossary_CSV(t *testing.T) {
	data := "source,target,context\nSave,Enregistrer,menu\nCancel,Annuler,\n"

	terms, err := LoadGlossary("terms.csv", []byte(data))
	if err != nil {
		t.Fatalf("LoadGlossary failed: %v", err)
	}
	if len(terms) != 2 {
		t.Fatalf("got %d terms, want 2: %+v", len(terms), terms)
	}
	if terms[0].Source != "Save" || terms[0].Target != "Enregistrer" || terms[0].Context != "menu" {
		t.Errorf("unexpected term 0: %+v", terms[0])
	}
	if terms[1].Context != "" {
		t.Errorf("expected empty context, got %q", terms[1].Context)
	}
}

func TestLoadGlossary_TSV(t *testing.T) {
	data := "Save\tEnregistrer\n"

	terms, err := LoadGlossary("terms.tsv", []byte(data))
	if err != nil {
		t.Fatalf("LoadGlossary failed: %v", err)
	}
	if len(terms) != 1 {
		t.Fatalf("got %d terms, want 1", len(terms))
	}
}

func TestLoadGlossary_TMX(t *testing.T) {
	terms, err := LoadGlossary("glossary.tmx", []byte(sampleTMX))
	if err != nil {
		t.Fatalf("LoadGlossary failed: %v", err)
	}
	if len(terms) != 2 {
		t.Fatalf("got %d terms, want 2: %+v", len(terms), terms)
	}
	if terms[0].Source != "Hello" || terms[0].Target != "Bonjour" {
		t.Errorf("unexpected term 0: %+v", terms[0])
	}
}

func TestLoadGlossary_UnsupportedExtension(t *testing.T) {
	_, err := LoadGlossary("terms.exe", []byte("x"))
	if err == nil {
		t.Fatal("expected an error for unsupported extension")
	}
}

func TestLoadGlossary_UnsupportedFormat(t *testing.T) {
	_, err := LoadGlossary("terms.json", []byte("{}"))
	if err == nil {
		t.Fatal("expected an error for a recognized but non-glossary format")
	}
}

func TestIsGlossaryHeader(t *testing.T) {
	cases := []struct {
		row  []string
		want bool
	}{
		{[]string{"source", "target"}, true},
		{[]string{"Term", "Translation"}, true},
		{[]string{"Save", "Enregistrer"}, false},
		{[]string{"Cancel", "Annuler", "menu"}, false},
	}
	for _, c := range cases {
		if got := isGlossaryHeader(c.row); got != c.want {
			t.Errorf("isGlossaryHeader(%v) = %v, want %v", c.row, got, c.want)
		}
	}
}

func TestLoadGlossaryTabular_SkipsIncompleteRows(t *testing.T) {
	data := "source,target\nonlyone\nSave,Enregistrer\n"

	terms, err := loadGlossaryTabular("terms.csv", []byte(data), ',')
	if err != nil {
		t.Fatalf("loadGlossaryTabular failed: %v", err)
	}
	if len(terms) != 1 {
		t.Fatalf("got %d terms, want 1 (incomplete row skipped): %+v", len(terms), terms)
	}
}
