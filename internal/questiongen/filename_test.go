package questiongen

import "testing"

func TestArtifactName(t *testing.T) {
	diffs := ProportionMap{"basic": 0.3, "intermediate": 0.3, "advanced": 0.4}
	blooms := ProportionMap{"remember": 0.3, "apply": 0.4, "analyze": 0.3}

	got := ArtifactName("Chapter 1 Taking Charge", diffs, blooms, TypeMCQ, nil)
	want := "Chapter_1_Taking_Charge_basic30_intermediate30_advanced40_remember30_apply40_analyze30_mcqs.json"
	if got != want {
		t.Errorf("got %q\nwant %q", got, want)
	}
}

func TestArtifactNameLearningObjectives(t *testing.T) {
	got := ArtifactName("Ch 2", ProportionMap{"basic": 1}, ProportionMap{"remember": 1}, TypeTrueFalse, []string{"LO 1", "LO 2"})
	want := "Ch_2_basic100_remember100_loLO_1_LO_2_tf.json"
	if got != want {
		t.Errorf("got %q\nwant %q", got, want)
	}
}

func TestArtifactNameSuffixes(t *testing.T) {
	diffs := ProportionMap{"basic": 1}
	blooms := ProportionMap{"remember": 1}
	tests := []struct {
		qt   QuestionType
		want string
	}{
		{TypeMCQ, "mcqs"},
		{TypeTrueFalse, "tf"},
		{TypeFillInBlank, "fib"},
	}
	for _, tt := range tests {
		name := ArtifactName("C", diffs, blooms, tt.qt, nil)
		want := "C_basic100_remember100_" + tt.want + ".json"
		if name != want {
			t.Errorf("%s: got %q, want %q", tt.qt, name, want)
		}
	}
}

func TestArtifactNameDeterministic(t *testing.T) {
	diffs := ProportionMap{"advanced": 0.5, "basic": 0.5}
	blooms := ProportionMap{"analyze": 0.5, "remember": 0.5}
	first := ArtifactName("Chapter", diffs, blooms, TypeFillInBlank, nil)
	for i := 0; i < 20; i++ {
		if again := ArtifactName("Chapter", diffs, blooms, TypeFillInBlank, nil); again != first {
			t.Fatalf("name changed between runs: %q vs %q", first, again)
		}
	}
}
