package tickets

import (
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/models"
)

func seedHistory(platform *fakePlatform, channelID string, count int) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < count; i++ {
		platform.messages[channelID] = append(platform.messages[channelID], Message{
			ID:         "msg-" + strconv.Itoa(i),
			AuthorName: "Author",
			Timestamp:  base.Add(time.Duration(i) * time.Second),
			Content:    "message " + strconv.Itoa(i),
		})
	}
}

func TestTranscriptSpansMultiplePages(t *testing.T) {
	platform := newFakePlatform()
	m := newTestManager(t, platform)

	ticket, _ := m.Create("user-1", "Ocean Fan", models.TicketGeneral)
	seedHistory(platform, ticket.ChannelID, 250)

	out, err := m.Transcript(ticket.ChannelID)
	if err != nil {
		t.Fatalf("Transcript() returned error: %v", err)
	}

	// every message present, exactly once, in ascending order
	last := -1
	for _, line := range strings.Split(out, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "message ") {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(trimmed, "message "))
		if err != nil {
			t.Fatalf("unexpected message line %q", line)
		}
		if n != last+1 {
			t.Fatalf("message %d followed message %d, want ascending with no gaps", n, last)
		}
		last = n
	}
	if last != 249 {
		t.Errorf("last message = %d, want 249", last)
	}
}

func TestTranscriptEmptyChannel(t *testing.T) {
	platform := newFakePlatform()
	m := newTestManager(t, platform)

	ticket, _ := m.Create("user-1", "Ocean Fan", models.TicketGeneral)

	out, err := m.Transcript(ticket.ChannelID)
	if err != nil {
		t.Fatalf("Transcript() returned error: %v", err)
	}
	if !strings.Contains(out, "Transcript") {
		t.Errorf("transcript of empty channel missing header: %q", out)
	}
}

func TestTranscriptRetrievalFailure(t *testing.T) {
	platform := newFakePlatform()
	m := newTestManager(t, platform)

	ticket, _ := m.Create("user-1", "Ocean Fan", models.TicketGeneral)
	platform.failFetch = true

	if _, err := m.Transcript(ticket.ChannelID); !errors.Is(err, ErrTranscriptFailed) {
		t.Errorf("Transcript() error = %v, want ErrTranscriptFailed", err)
	}
}

func TestTranscriptRosterSkipsUnresolvedMembers(t *testing.T) {
	platform := newFakePlatform()
	m := newTestManager(t, platform)

	ticket, _ := m.Create("user-1", "Ocean Fan", models.TicketGeneral)
	m.AddUser(ticket.ChannelID, "user-gone", false)

	platform.mu.Lock()
	platform.members["user-1"] = Member{
		UserID:      "user-1",
		DisplayName: "Ocean Fan",
		JoinedAt:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		RoleNames:   []string{"Regular"},
	}
	platform.mu.Unlock()

	out, err := m.Transcript(ticket.ChannelID)
	if err != nil {
		t.Fatalf("Transcript() returned error: %v", err)
	}
	if !strings.Contains(out, "Ocean Fan (joined 2025-06-01)") {
		t.Errorf("roster missing resolved member:\n%s", out)
	}
	if !strings.Contains(out, "Regular") {
		t.Errorf("roster missing member roles:\n%s", out)
	}
	if strings.Contains(out, "user-gone") {
		t.Errorf("roster lists an unresolvable member:\n%s", out)
	}
}

func TestTranscriptIndentsMultilineContent(t *testing.T) {
	platform := newFakePlatform()
	m := newTestManager(t, platform)

	ticket, _ := m.Create("user-1", "Ocean Fan", models.TicketGeneral)
	platform.messages[ticket.ChannelID] = []Message{{
		ID:          "msg-0",
		AuthorName:  "Author",
		Timestamp:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Content:     "first line\nsecond line",
		Attachments: []string{"https://cdn.example/file.png"},
	}}

	out, err := m.Transcript(ticket.ChannelID)
	if err != nil {
		t.Fatalf("Transcript() returned error: %v", err)
	}
	if !strings.Contains(out, "    first line\n    second line\n") {
		t.Errorf("multiline content not indented:\n%s", out)
	}
	if !strings.Contains(out, "[attachments: https://cdn.example/file.png]") {
		t.Errorf("attachment bracket missing:\n%s", out)
	}
}
