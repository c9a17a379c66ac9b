package tqa

import "testing"

func glossaryCtx(units []TranslationUnit, terms []GlossaryTerm) *ruleContext {
	cfg, err := QAConfig{Glossary: terms}.resolve()
	if err != nil {
		panic(err)
	}
	return newRuleContext(units, cfg)
}

func TestCheckKeyTermMismatch_WorkedExample(t *testing.T) {
	u := TranslationUnit{Source: "Open file", Target: "Ouvrir document"}
	terms := []GlossaryTerm{{Source: "file", Target: "fichier"}}
	ctx := glossaryCtx([]TranslationUnit{u}, terms)

	issue, ok := checkKeyTermMismatch(u, 0, ctx)
	if !ok {
		t.Fatal("expected key_term_mismatch when the glossary target is absent")
	}
	if issue.Suggestion != "fichier" {
		t.Errorf("suggestion = %q, want %q", issue.Suggestion, "fichier")
	}
}

func TestCheckKeyTermMismatch_Honored(t *testing.T) {
	u := TranslationUnit{Source: "Open file", Target: "Ouvrir fichier"}
	terms := []GlossaryTerm{{Source: "file", Target: "fichier"}}
	ctx := glossaryCtx([]TranslationUnit{u}, terms)

	if _, ok := checkKeyTermMismatch(u, 0, ctx); ok {
		t.Error("did not expect key_term_mismatch when the glossary target is present")
	}
}

func TestCheckKeyTermMismatch_TermNotInSource(t *testing.T) {
	u := TranslationUnit{Source: "Open menu", Target: "Ouvrir menu"}
	terms := []GlossaryTerm{{Source: "file", Target: "fichier"}}
	ctx := glossaryCtx([]TranslationUnit{u}, terms)

	if _, ok := checkKeyTermMismatch(u, 0, ctx); ok {
		t.Error("did not expect key_term_mismatch when the glossary source is absent from this unit")
	}
}

func TestCheckKeyTermMismatch_WordBoundary(t *testing.T) {
	u := TranslationUnit{Source: "Open filename", Target: "Ouvrir nom"}
	terms := []GlossaryTerm{{Source: "file", Target: "fichier"}}
	ctx := glossaryCtx([]TranslationUnit{u}, terms)

	if _, ok := checkKeyTermMismatch(u, 0, ctx); ok {
		t.Error("did not expect key_term_mismatch; 'file' inside 'filename' should not match a word boundary")
	}
}

func TestCheckKeyTermMismatch_MultipleViolations(t *testing.T) {
	u := TranslationUnit{Source: "Open file or folder", Target: "Ouvrir document ou répertoire"}
	terms := []GlossaryTerm{
		{Source: "file", Target: "fichier"},
		{Source: "folder", Target: "dossier"},
	}
	ctx := glossaryCtx([]TranslationUnit{u}, terms)

	issue, ok := checkKeyTermMismatch(u, 0, ctx)
	if !ok {
		t.Fatal("expected key_term_mismatch for two violated terms")
	}
	if issue.Suggestion != "fichier" {
		t.Errorf("suggestion should be the first violated term's target, got %q", issue.Suggestion)
	}
}
