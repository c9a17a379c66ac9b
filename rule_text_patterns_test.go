package tqa

import "testing"

func TestCheckInconsistentPunctuation_WorkedExample(t *testing.T) {
	u := TranslationUnit{Source: "Are you sure?", Target: "Êtes-vous sûr"}
	issue, ok := checkInconsistentPunctuation(u, 0, nil)
	if !ok {
		t.Fatal("expected inconsistent_punctuation to fire")
	}
	if issue.Suggestion != "Êtes-vous sûr?" {
		t.Errorf("suggestion = %q, want %q", issue.Suggestion, "Êtes-vous sûr?")
	}
}

func TestCheckInconsistentPunctuation_NoSourceMark(t *testing.T) {
	u := TranslationUnit{Source: "Save file", Target: "Sauver le fichier "}
	if _, ok := checkInconsistentPunctuation(u, 0, nil); ok {
		t.Error("did not expect inconsistent_punctuation; source has no trailing punctuation")
	}
}

func TestCheckInconsistentPunctuation_Matching(t *testing.T) {
	u := TranslationUnit{Source: "Really?", Target: "Vraiment?"}
	if _, ok := checkInconsistentPunctuation(u, 0, nil); ok {
		t.Error("did not expect inconsistent_punctuation when marks match")
	}
}

func TestCheckInconsistentNumbers(t *testing.T) {
	u := TranslationUnit{Source: "You have 3 new messages", Target: "Vous avez de nouveaux messages"}
	if _, ok := checkInconsistentNumbers(u, 0, nil); !ok {
		t.Error("expected inconsistent_numbers when a digit run is dropped")
	}

	u2 := TranslationUnit{Source: "You have 3 new messages", Target: "Vous avez 3 nouveaux messages"}
	if _, ok := checkInconsistentNumbers(u2, 0, nil); ok {
		t.Error("did not expect inconsistent_numbers when digit runs match")
	}
}

func TestCheckInconsistentURLs(t *testing.T) {
	u := TranslationUnit{Source: "Visit https://example.com now", Target: "Visitez maintenant"}
	if _, ok := checkInconsistentURLs(u, 0, nil); !ok {
		t.Error("expected inconsistent_urls when the URL is dropped")
	}
}

func TestCheckInconsistentEmails(t *testing.T) {
	u := TranslationUnit{Source: "Contact support@example.com", Target: "Contactez-nous"}
	if _, ok := checkInconsistentEmails(u, 0, nil); !ok {
		t.Error("expected inconsistent_emails when the address is dropped")
	}
}

func TestCheckAlphanumericMismatch(t *testing.T) {
	u := TranslationUnit{Source: "Model X200 ready", Target: "Modèle X201 prêt"}
	issue, ok := checkAlphanumericMismatch(u, 0, nil)
	if !ok {
		t.Fatal("expected alphanumeric_mismatch for X200 vs X201")
	}
	if issue.Message == "" {
		t.Error("expected a message listing missing/extra runs")
	}

	u2 := TranslationUnit{Source: "Model X200 ready", Target: "Model X200, ready"}
	if _, ok := checkAlphanumericMismatch(u2, 0, nil); ok {
		t.Error("did not expect alphanumeric_mismatch when runs match")
	}
}
