package tqa

import "testing"

func TestCheckTooLongTranslation(t *testing.T) {
	u := TranslationUnit{Source: "Save", Target: "Enregistrer le fichier maintenant"}
	ctx := unitCtx([]TranslationUnit{u})
	issue, ok := checkTooLongTranslation(u, 0, ctx)
	if !ok {
		t.Fatal("expected too_long_translation when target is far longer than source")
	}
	if issue.Message == "" {
		t.Error("expected a non-empty message")
	}
}

func TestCheckTooLongTranslation_WithinRatio(t *testing.T) {
	u := TranslationUnit{Source: "Save file", Target: "Enregistrer"}
	ctx := unitCtx([]TranslationUnit{u})
	if _, ok := checkTooLongTranslation(u, 0, ctx); ok {
		t.Error("did not expect too_long_translation within the default ratio")
	}
}

func TestCheckTooLongTranslation_EmptySourceSkipped(t *testing.T) {
	u := TranslationUnit{Target: "Enregistrer"}
	ctx := unitCtx([]TranslationUnit{u})
	if _, ok := checkTooLongTranslation(u, 0, ctx); ok {
		t.Error("did not expect too_long_translation with an empty source")
	}
}

func TestCheckTooLongTranslation_CustomRatio(t *testing.T) {
	u := TranslationUnit{Source: "Save", Target: "Enregistrer"}
	cfg, err := QAConfig{MaxLengthRatio: 3.0}.resolve()
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	ctx := newRuleContext([]TranslationUnit{u}, cfg)
	if _, ok := checkTooLongTranslation(u, 0, ctx); ok {
		t.Error("did not expect too_long_translation once the ratio is raised to 3.0")
	}
}
