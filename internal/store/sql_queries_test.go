package store

import (
	"testing"

	"github.com/mzhuravlev/phrasebot/models"
)

func TestBuildSetDisabledQuery(t *testing.T) {
	query, args, err := buildSetDisabledQuery(100, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "UPDATE users SET is_disabled = $1, updated = NOW() WHERE id = $2"
	if query != want {
		t.Errorf("query mismatch:\n got: %s\nwant: %s", query, want)
	}
	if len(args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(args))
	}
	if args[0] != true {
		t.Errorf("expected first arg true, got %v", args[0])
	}
	if args[1] != int64(100) {
		t.Errorf("expected second arg 100, got %v", args[1])
	}
}

func TestBuildSetInputStateQuery(t *testing.T) {
	query, args, err := buildSetInputStateQuery(100, models.InputStateAwaitingPhraseAdding)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "UPDATE users SET input_state = $1, updated = NOW() WHERE id = $2"
	if query != want {
		t.Errorf("query mismatch:\n got: %s\nwant: %s", query, want)
	}
	if args[0] != int16(models.InputStateAwaitingPhraseAdding) {
		t.Errorf("expected state arg, got %v", args[0])
	}
}

func TestBuildSetMessageIDQuery(t *testing.T) {
	query, args, err := buildSetMessageIDQuery("phrase_message_id", 7, 555)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "UPDATE phrases SET phrase_message_id = $1 WHERE id = $2"
	if query != want {
		t.Errorf("query mismatch:\n got: %s\nwant: %s", query, want)
	}
	if args[0] != int64(555) || args[1] != int64(7) {
		t.Errorf("unexpected args: %v", args)
	}
}
