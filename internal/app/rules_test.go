package app

import (
	"testing"
)

func TestRunRules_FromFile(t *testing.T) {
	setupCommandTest(t)
	path := writeTestDataset(t, "1,2,3\n1,2,3\n1,2,3\n1,2\n1,2\n1,2\n4\n4\n4\n4\n")

	for flag, value := range map[string]string{
		"input":        path,
		"minsup":       "0.25",
		"minconf":      "0.4",
		"index-column": "false",
	} {
		if err := rulesCmd.Flags().Set(flag, value); err != nil {
			t.Fatalf("failed to set %s flag: %v", flag, err)
		}
	}
	rulesFromStore = false

	if err := runRules(rulesCmd, nil); err != nil {
		t.Fatalf("runRules failed: %v", err)
	}
}

func TestRunRules_InvalidConfidence(t *testing.T) {
	setupCommandTest(t)
	path := writeTestDataset(t, "1,2\n")

	for flag, value := range map[string]string{
		"input":        path,
		"minsup":       "0.5",
		"minconf":      "2",
		"index-column": "false",
	} {
		if err := rulesCmd.Flags().Set(flag, value); err != nil {
			t.Fatalf("failed to set %s flag: %v", flag, err)
		}
	}
	rulesFromStore = false

	if err := runRules(rulesCmd, nil); err == nil {
		t.Error("expected error for minconf outside (0, 1]")
	}
}
