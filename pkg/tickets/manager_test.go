package tickets

import (
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/models"
	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/storage"
)

// fakePlatform is an in-memory stand-in for the Discord adapter
type fakePlatform struct {
	mu         sync.Mutex
	nextID     int
	channels   map[string][]Overwrite
	messages   map[string][]Message
	sent       map[string][]string
	members    map[string]Member
	failFetch  bool
	failCreate bool
	deleted    []string
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{
		channels: map[string][]Overwrite{},
		messages: map[string][]Message{},
		sent:     map[string][]string{},
		members:  map[string]Member{},
	}
}

func (f *fakePlatform) CreateTicketChannel(name, topic string, overwrites []Overwrite) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate {
		return "", errors.New("create failed")
	}
	f.nextID++
	id := "chan-" + strconv.Itoa(f.nextID)
	f.channels[id] = append([]Overwrite(nil), overwrites...)
	return id, nil
}

func (f *fakePlatform) DeleteChannel(channelID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.channels, channelID)
	f.deleted = append(f.deleted, channelID)
	return nil
}

func (f *fakePlatform) EditChannelACL(channelID, principalID string, isRole bool, acl ACL) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	entries := f.channels[channelID]
	for i, ow := range entries {
		if ow.PrincipalID == principalID {
			entries[i].Allow = acl
			entries[i].DenyView = false
			return nil
		}
	}
	f.channels[channelID] = append(entries, Overwrite{PrincipalID: principalID, IsRole: isRole, Allow: acl})
	return nil
}

func (f *fakePlatform) RemoveChannelACL(channelID, principalID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	entries := f.channels[channelID]
	for i, ow := range entries {
		if ow.PrincipalID == principalID {
			f.channels[channelID] = append(entries[:i], entries[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakePlatform) HasViewAccess(channelID, userID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ow := range f.channels[channelID] {
		if ow.PrincipalID == userID && ow.Allow.View {
			return true
		}
	}
	return false
}

func (f *fakePlatform) SendMessage(channelID, content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent[channelID] = append(f.sent[channelID], content)
	return nil
}

func (f *fakePlatform) FetchMessagesPage(channelID, beforeID string, limit int) ([]Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFetch {
		return nil, errors.New("fetch failed")
	}
	// history is stored oldest-first; pages come back newest-first
	history := f.messages[channelID]
	end := len(history)
	if beforeID != "" {
		for i, msg := range history {
			if msg.ID == beforeID {
				end = i
				break
			}
		}
	}
	start := end - limit
	if start < 0 {
		start = 0
	}
	page := make([]Message, 0, end-start)
	for i := end - 1; i >= start; i-- {
		page = append(page, history[i])
	}
	return page, nil
}

func (f *fakePlatform) ChannelMemberOverwrites(channelID string) ([]Overwrite, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Overwrite
	for _, ow := range f.channels[channelID] {
		if !ow.IsRole {
			out = append(out, ow)
		}
	}
	return out, nil
}

func (f *fakePlatform) ResolveMember(userID string) (Member, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	member, ok := f.members[userID]
	if !ok {
		return Member{}, errors.New("member not found")
	}
	return member, nil
}

func (f *fakePlatform) SendDirectMessage(userID, content string) {}

func (f *fakePlatform) overwriteFor(channelID, principalID string) (Overwrite, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ow := range f.channels[channelID] {
		if ow.PrincipalID == principalID {
			return ow, true
		}
	}
	return Overwrite{}, false
}

var testSettings = Settings{
	EveryoneID:    "guild-1",
	SupportRoleID: "role-support",
	ReportRoleID:  "role-report",
}

func newTestManager(t *testing.T, platform Platform) *Manager {
	t.Helper()
	store, err := storage.NewJSONStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewJSONStore() returned error: %v", err)
	}
	m, err := NewManager(store, platform, testSettings)
	if err != nil {
		t.Fatalf("NewManager() returned error: %v", err)
	}
	return m
}

func TestCreateBuildsChannelACL(t *testing.T) {
	platform := newFakePlatform()
	m := newTestManager(t, platform)

	ticket, err := m.Create("user-1", "Ocean Fan", models.TicketGeneral)
	if err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}
	if ticket.State != models.TicketStateOpen {
		t.Errorf("State = %v, want open", ticket.State)
	}

	if ow, ok := platform.overwriteFor(ticket.ChannelID, "guild-1"); !ok || !ow.DenyView {
		t.Errorf("everyone overwrite = %+v, want view denied", ow)
	}
	if ow, ok := platform.overwriteFor(ticket.ChannelID, "user-1"); !ok || !ow.Allow.View || !ow.Allow.Send {
		t.Errorf("owner overwrite = %+v, want view+send", ow)
	}
	if _, ok := platform.overwriteFor(ticket.ChannelID, "role-support"); !ok {
		t.Error("support role missing from a general ticket")
	}
}

func TestCreateReportExcludesSupportRole(t *testing.T) {
	platform := newFakePlatform()
	m := newTestManager(t, platform)

	ticket, err := m.Create("user-1", "Reporter", models.TicketReport)
	if err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}
	if _, ok := platform.overwriteFor(ticket.ChannelID, "role-support"); ok {
		t.Error("support role has access to a report ticket")
	}
	if _, ok := platform.overwriteFor(ticket.ChannelID, "role-report"); !ok {
		t.Error("report role missing from a report ticket")
	}
}

func TestCreateRejectsSecondTicket(t *testing.T) {
	platform := newFakePlatform()
	m := newTestManager(t, platform)

	if _, err := m.Create("user-1", "Ocean Fan", models.TicketGeneral); err != nil {
		t.Fatalf("first Create() returned error: %v", err)
	}
	if _, err := m.Create("user-1", "Ocean Fan", models.TicketBan); !errors.Is(err, ErrAlreadyOpen) {
		t.Errorf("second Create() error = %v, want ErrAlreadyOpen", err)
	}
	// another user is unaffected
	if _, err := m.Create("user-2", "Someone Else", models.TicketGeneral); err != nil {
		t.Errorf("Create() for second user returned error: %v", err)
	}
}

func TestClaim(t *testing.T) {
	platform := newFakePlatform()
	m := newTestManager(t, platform)

	ticket, _ := m.Create("user-1", "Ocean Fan", models.TicketGeneral)

	claimed, err := m.Claim(ticket.ChannelID, "staff-1")
	if err != nil {
		t.Fatalf("Claim() returned error: %v", err)
	}
	if claimed.State != models.TicketStateClaimed || claimed.ClaimantID != "staff-1" {
		t.Errorf("claimed ticket = %+v, want claimed by staff-1", claimed)
	}

	if _, err := m.Claim(ticket.ChannelID, "staff-2"); !errors.Is(err, ErrAlreadyClaimed) {
		t.Errorf("second Claim() error = %v, want ErrAlreadyClaimed", err)
	}
	if _, err := m.Claim("chan-nope", "staff-1"); !errors.Is(err, ErrNotTicket) {
		t.Errorf("Claim() on non-ticket error = %v, want ErrNotTicket", err)
	}
}

func TestCanClaim(t *testing.T) {
	m := newTestManager(t, newFakePlatform())

	if !m.CanClaim(true, nil) {
		t.Error("privileged actor should be able to claim")
	}
	if !m.CanClaim(false, []string{"role-x", "role-support"}) {
		t.Error("support role holder should be able to claim")
	}
	if m.CanClaim(false, []string{"role-x"}) {
		t.Error("unprivileged actor without staff role claimed a ticket")
	}
}

func TestCloseRevokesOwnerSend(t *testing.T) {
	platform := newFakePlatform()
	m := newTestManager(t, platform)

	ticket, _ := m.Create("user-1", "Ocean Fan", models.TicketGeneral)

	closed, err := m.Close(ticket.ChannelID)
	if err != nil {
		t.Fatalf("Close() returned error: %v", err)
	}
	if closed.State != models.TicketStateClosed {
		t.Errorf("State = %v, want closed", closed.State)
	}
	ow, _ := platform.overwriteFor(ticket.ChannelID, "user-1")
	if !ow.Allow.View || ow.Allow.Send {
		t.Errorf("owner overwrite after close = %+v, want view without send", ow.Allow)
	}
}

func TestReopenRestoresOwner(t *testing.T) {
	platform := newFakePlatform()
	m := newTestManager(t, platform)

	ticket, _ := m.Create("user-1", "Ocean Fan", models.TicketGeneral)
	m.Claim(ticket.ChannelID, "staff-1")
	m.Close(ticket.ChannelID)

	reopened, err := m.Reopen(ticket.ChannelID)
	if err != nil {
		t.Fatalf("Reopen() returned error: %v", err)
	}
	if reopened.State != models.TicketStateOpen || reopened.ClaimantID != "" {
		t.Errorf("reopened ticket = %+v, want open and unclaimed", reopened)
	}
	ow, _ := platform.overwriteFor(ticket.ChannelID, "user-1")
	if !ow.Allow.View || !ow.Allow.Send {
		t.Errorf("owner overwrite after reopen = %+v, want view+send", ow.Allow)
	}
}

func TestDeleteFreesOwnerSlot(t *testing.T) {
	platform := newFakePlatform()
	m := newTestManager(t, platform)

	ticket, _ := m.Create("user-1", "Ocean Fan", models.TicketGeneral)

	if _, err := m.Delete(ticket.ChannelID); err != nil {
		t.Fatalf("Delete() returned error: %v", err)
	}
	// the record goes immediately, before the channel does
	if m.IsTicketChannel(ticket.ChannelID) {
		t.Error("ticket record still present after Delete()")
	}
	if _, err := m.Create("user-1", "Ocean Fan", models.TicketGeneral); err != nil {
		t.Errorf("Create() after Delete() returned error: %v", err)
	}
}

func TestAutoAddGrantsAccess(t *testing.T) {
	platform := newFakePlatform()
	m := newTestManager(t, platform)

	ticket, _ := m.Create("user-1", "Ocean Fan", models.TicketGeneral)

	m.AutoAdd(ticket.ChannelID, []string{"user-2", "user-1"})

	waitFor(t, func() bool {
		ow, ok := platform.overwriteFor(ticket.ChannelID, "user-2")
		return ok && ow.Allow.View && ow.Allow.Send
	})

	// mentions outside ticket channels do nothing
	m.AutoAdd("chan-nope", []string{"user-3"})
	if _, ok := platform.overwriteFor("chan-nope", "user-3"); ok {
		t.Error("AutoAdd() touched a non-ticket channel")
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	platform := newFakePlatform()
	store, err := storage.NewJSONStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewJSONStore() returned error: %v", err)
	}
	m, err := NewManager(store, platform, testSettings)
	if err != nil {
		t.Fatalf("NewManager() returned error: %v", err)
	}

	ticket, _ := m.Create("user-1", "Ocean Fan", models.TicketGeneral)
	m.Claim(ticket.ChannelID, "staff-1")

	restarted, err := NewManager(store, platform, testSettings)
	if err != nil {
		t.Fatalf("NewManager() after restart returned error: %v", err)
	}
	got, ok := restarted.Get(ticket.ChannelID)
	if !ok {
		t.Fatal("ticket record lost across restart")
	}
	if got.State != models.TicketStateClaimed || got.ClaimantID != "staff-1" {
		t.Errorf("restored ticket = %+v, want claimed by staff-1", got)
	}
	if _, err := restarted.Create("user-1", "Ocean Fan", models.TicketGeneral); !errors.Is(err, ErrAlreadyOpen) {
		t.Errorf("Create() after restart error = %v, want ErrAlreadyOpen", err)
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Ocean Fan", "ocean-fan"},
		{"UPPER.case_name", "upper-case-name"},
		{"日本語", "user"},
		{"--trimmed--", "trimmed"},
	}
	for _, tc := range cases {
		if got := slugify(tc.in); got != tc.want {
			t.Errorf("slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// waitFor polls until the condition holds or the test gives up
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	for i := 0; i < 200; i++ {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition never became true")
}
