package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/bornholm/upline/internal/constants"
	"github.com/pkg/errors"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store := NewStore(filepath.Join(t.TempDir(), "store.db"))

	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Logf("could not close store: %+v", errors.WithStack(err))
		}
	})

	if err := store.HealthCheck(context.Background()); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return store
}

func TestHealthCheckFreshStore(t *testing.T) {
	for i := 0; i < 3; i++ {
		store := NewStore(filepath.Join(t.TempDir(), "fresh.db"))

		if err := store.HealthCheck(context.Background()); err != nil {
			t.Errorf("fresh store #%d: %+v", i, errors.WithStack(err))
		}

		if err := store.Close(); err != nil {
			t.Errorf("%+v", errors.WithStack(err))
		}
	}
}

func TestMemberLifecycle(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	sponsor, err := store.CreateMember(ctx, NewMember{
		Email:    "  Sponsor@Example.com ",
		Nickname: "sponsor",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "sponsor@example.com", sponsor.Email; e != g {
		t.Errorf("sponsor.Email: expected '%s', got '%s'", e, g)
	}

	if e, g := constants.RoleMember, sponsor.Role; e != g {
		t.Errorf("sponsor.Role: expected '%s', got '%s'", e, g)
	}

	if e, g := constants.ReferralCodeLength, len(sponsor.ReferralCode); e != g {
		t.Errorf("len(sponsor.ReferralCode): expected %d, got %d", e, g)
	}

	if e, g := ProviderPassword, sponsor.UserProvider(); e != g {
		t.Errorf("sponsor.UserProvider(): expected '%s', got '%s'", e, g)
	}

	referral, err := store.CreateMember(ctx, NewMember{
		Email:       "referral@example.com",
		Password:    "another secret",
		SponsorCode: sponsor.ReferralCode,
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := sponsor.ID, referral.SponsorID; e != g {
		t.Errorf("referral.SponsorID: expected %d, got %d", e, g)
	}

	if e, g := "referral@example.com", referral.DisplayName(); e != g {
		t.Errorf("referral.DisplayName(): expected '%s', got '%s'", e, g)
	}

	found, err := store.FindMemberByReferralCode(ctx, sponsor.ReferralCode)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := sponsor.ID, found.ID; e != g {
		t.Errorf("found.ID: expected %d, got %d", e, g)
	}

	referrals, err := store.ListReferrals(ctx, sponsor.ID)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, len(referrals); e != g {
		t.Fatalf("len(referrals): expected %d, got %d", e, g)
	}

	if e, g := referral.ID, referrals[0].ID; e != g {
		t.Errorf("referrals[0].ID: expected %d, got %d", e, g)
	}

	count, err := store.CountReferrals(ctx, sponsor.ID)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := int64(1), count; e != g {
		t.Errorf("CountReferrals: expected %d, got %d", e, g)
	}

	total, err := store.CountMembers(ctx)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := int64(2), total; e != g {
		t.Errorf("CountMembers: expected %d, got %d", e, g)
	}

	if err := store.TouchMember(ctx, sponsor.ID, constants.RoleAdmin); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	reloaded, err := store.GetMember(ctx, sponsor.ID)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := constants.RoleAdmin, reloaded.Role; e != g {
		t.Errorf("reloaded.Role: expected '%s', got '%s'", e, g)
	}

	if reloaded.ConnectedAt.IsZero() {
		t.Errorf("reloaded.ConnectedAt: expected non zero time")
	}
}

func TestCreateMemberErrors(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	if _, err := store.CreateMember(ctx, NewMember{Email: "dup@example.com", Password: "password1"}); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	_, err := store.CreateMember(ctx, NewMember{Email: "DUP@example.com", Password: "password2"})
	if !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("duplicate email: expected ErrAlreadyExists, got %+v", err)
	}

	_, err = store.CreateMember(ctx, NewMember{Email: "orphan@example.com", Password: "password3", SponsorCode: "unknown"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown sponsor: expected ErrNotFound, got %+v", err)
	}

	total, err := store.CountMembers(ctx)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := int64(1), total; e != g {
		t.Errorf("CountMembers: expected %d, got %d", e, g)
	}

	if _, err := store.GetMember(ctx, 9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetMember: expected ErrNotFound, got %+v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	if _, err := store.CreateMember(ctx, NewMember{Email: "jane@example.com", Password: "s3cret-pass"}); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	type testCase struct {
		Email    string
		Password string
		Err      error
	}

	testCases := []testCase{
		{Email: "jane@example.com", Password: "s3cret-pass"},
		{Email: " JANE@example.com", Password: "s3cret-pass"},
		{Email: "jane@example.com", Password: "wrong", Err: ErrInvalidCredentials},
		{Email: "john@example.com", Password: "s3cret-pass", Err: ErrInvalidCredentials},
	}

	for _, tc := range testCases {
		t.Run(tc.Email+"/"+tc.Password, func(t *testing.T) {
			member, err := store.Authenticate(ctx, tc.Email, tc.Password)
			if tc.Err != nil {
				if !errors.Is(err, tc.Err) {
					t.Fatalf("expected error '%v', got '%+v'", tc.Err, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := "jane@example.com", member.Email; e != g {
				t.Errorf("member.Email: expected '%s', got '%s'", e, g)
			}
		})
	}
}

func TestFindOrCreateMember(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	first, err := store.FindOrCreateMember(ctx, "12345", "github", "octo@example.com", "octo")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	second, err := store.FindOrCreateMember(ctx, "12345", "github", "octo@example.com", "octo")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := first.ID, second.ID; e != g {
		t.Errorf("second.ID: expected %d, got %d", e, g)
	}

	if e, g := "octo", second.DisplayName(); e != g {
		t.Errorf("second.DisplayName(): expected '%s', got '%s'", e, g)
	}

	if _, err := store.Authenticate(ctx, "octo@example.com", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("oauth2 member should not authenticate with password, got %+v", err)
	}
}

func TestSaveContactMessage(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	id, err := store.SaveContactMessage(ctx, ContactMessage{
		Name:    "Jane",
		Email:   "jane@example.com",
		Message: "Hello",
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if id == 0 {
		t.Errorf("id: expected non zero identifier")
	}

	count, err := store.CountContactMessages(ctx)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := int64(1), count; e != g {
		t.Errorf("CountContactMessages: expected %d, got %d", e, g)
	}

	messages, err := store.ListContactMessages(ctx, 10)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, len(messages); e != g {
		t.Fatalf("len(messages): expected %d, got %d", e, g)
	}

	if e, g := "Hello", messages[0].Message; e != g {
		t.Errorf("messages[0].Message: expected '%s', got '%s'", e, g)
	}
}

func TestListMembersAndUpdateRole(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		if _, err := store.CreateMember(ctx, NewMember{Email: email, Password: "password1"}); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}
	}

	page, err := store.ListMembers(ctx, 0, 2)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 2, len(page); e != g {
		t.Fatalf("len(page): expected %d, got %d", e, g)
	}

	rest, err := store.ListMembers(ctx, 2, 2)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, len(rest); e != g {
		t.Fatalf("len(rest): expected %d, got %d", e, g)
	}

	if err := store.UpdateMemberRole(ctx, rest[0].ID, constants.RoleAdmin); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	member, err := store.GetMember(ctx, rest[0].ID)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := constants.RoleAdmin, member.Role; e != g {
		t.Errorf("member.Role: expected '%s', got '%s'", e, g)
	}

	if err := store.UpdateMemberRole(ctx, 9999, constants.RoleAdmin); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateMemberRole: expected ErrNotFound, got %+v", err)
	}

	if err := store.UpdateMemberRole(ctx, member.ID, constants.Role("owner")); !errors.Is(err, constants.ErrInvalidRole) {
		t.Errorf("UpdateMemberRole: expected ErrInvalidRole, got %+v", err)
	}
}
