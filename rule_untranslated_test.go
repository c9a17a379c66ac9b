package tqa

import "testing"

func TestCheckUntranslatedText(t *testing.T) {
	u := TranslationUnit{Source: "Settings Menu Options", Target: "Settings Menu Options"}
	if _, ok := checkUntranslatedText(u, 0, nil); !ok {
		t.Error("expected untranslated_text when the target is identical to source")
	}
}

func TestCheckUntranslatedText_Translated(t *testing.T) {
	u := TranslationUnit{Source: "Settings Menu Options", Target: "Paramètres du menu"}
	if _, ok := checkUntranslatedText(u, 0, nil); ok {
		t.Error("did not expect untranslated_text on a fully translated target")
	}
}

func TestCheckUntranslatedText_ShortSourceSkipped(t *testing.T) {
	u := TranslationUnit{Source: "OK", Target: "OK"}
	if _, ok := checkUntranslatedText(u, 0, nil); ok {
		t.Error("did not expect untranslated_text when source length < 5")
	}
}

func TestCheckUntranslatedText_PurelyDigitsSkipped(t *testing.T) {
	u := TranslationUnit{Source: "123456", Target: "123456"}
	if _, ok := checkUntranslatedText(u, 0, nil); ok {
		t.Error("did not expect untranslated_text when source is purely digits")
	}
}

func TestIsPurelyDigits(t *testing.T) {
	cases := map[string]bool{"123": true, "": false, "12a": false, "0": true}
	for in, want := range cases {
		if got := isPurelyDigits(in); got != want {
			t.Errorf("isPurelyDigits(%q) = %v, want %v", in, got, want)
		}
	}
}
