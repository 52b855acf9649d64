package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bornholm/upline/internal/authz"
	"github.com/bornholm/upline/internal/constants"
	"github.com/pkg/errors"
	"github.com/rs/xid"
	"golang.org/x/crypto/bcrypt"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// ProviderPassword identifies the members authenticating with email and password.
const ProviderPassword = "password"

var ErrInvalidCredentials = errors.New("invalid credentials")

var memberMigrations = []string{
	`CREATE TABLE IF NOT EXISTS members (
		id INTEGER PRIMARY KEY,

		subject TEXT NOT NULL,
		provider TEXT NOT NULL,

		email TEXT NOT NULL,
		nickname TEXT,
		role TEXT NOT NULL,

		referral_code TEXT NOT NULL,
		sponsor_id INTEGER REFERENCES members(id) ON DELETE SET NULL,

		password_hash BLOB,

		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL,
		connected_at INTEGER,

		UNIQUE (subject, provider),
		UNIQUE (referral_code)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_members_sponsor ON members(sponsor_id);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_members_password_email ON members(email) WHERE provider = 'password';`,
}

type Member struct {
	ID int64

	Provider string
	Subject  string

	Email    string
	Nickname string
	Role     constants.Role

	ReferralCode string
	SponsorID    int64

	PasswordHash []byte

	CreatedAt   time.Time
	UpdatedAt   time.Time
	ConnectedAt time.Time
}

// UserProvider implements authz.User.
func (m *Member) UserProvider() string {
	return m.Provider
}

// UserSubject implements authz.User.
func (m *Member) UserSubject() string {
	return m.Subject
}

// UserRole implements authz.User.
func (m *Member) UserRole() constants.Role {
	return m.Role
}

func (m *Member) DisplayName() string {
	if m.Nickname != "" {
		return m.Nickname
	}

	return m.Email
}

var _ authz.User = &Member{}

type NewMember struct {
	Email       string
	Nickname    string
	Password    string
	SponsorCode string
	Role        constants.Role
}

var memberAttributes = `id, subject, provider, email, nickname, role, referral_code, sponsor_id, password_hash, created_at, updated_at, connected_at`

func (s *Store) bindMember(stmt *sqlite.Stmt, member *Member) error {
	member.ID = stmt.ColumnInt64(0)
	member.Subject = stmt.ColumnText(1)
	member.Provider = stmt.ColumnText(2)
	member.Email = stmt.ColumnText(3)
	member.Nickname = stmt.ColumnText(4)

	role, err := constants.ParseRole(stmt.ColumnText(5))
	if err != nil {
		return errors.WithStack(err)
	}

	member.Role = role
	member.ReferralCode = stmt.ColumnText(6)
	member.SponsorID = stmt.ColumnInt64(7)

	member.PasswordHash = make([]byte, stmt.ColumnLen(8))
	stmt.ColumnBytes(8, member.PasswordHash)

	member.CreatedAt = time.Unix(stmt.ColumnInt64(9), 0)
	member.UpdatedAt = time.Unix(stmt.ColumnInt64(10), 0)

	if connectedAt := stmt.ColumnInt64(11); connectedAt != 0 {
		member.ConnectedAt = time.Unix(connectedAt, 0)
	}

	return nil
}

func (s *Store) CreateMember(ctx context.Context, newMember NewMember) (*Member, error) {
	email := normalizeEmail(newMember.Email)

	role := newMember.Role
	if role == "" {
		role = constants.RoleMember
	}

	passwordHash, err := hashPassword(newMember.Password)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var member *Member

	err = s.Tx(ctx, func(conn *sqlite.Conn) error {
		var sponsorID any

		if newMember.SponsorCode != "" {
			sponsor, err := s.findMemberByReferralCode(conn, newMember.SponsorCode)
			if err != nil {
				return errors.WithStack(err)
			}

			sponsorID = sponsor.ID
		}

		query := fmt.Sprintf(`
			INSERT INTO members
				(subject, provider, email, nickname, role, referral_code, sponsor_id, password_hash, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING %s;`,
			memberAttributes,
		)

		now := time.Now().UTC().Unix()

		err := sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
			Args: []any{email, ProviderPassword, email, newMember.Nickname, string(role), xid.New().String(), sponsorID, passwordHash, now, now},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				member = &Member{}
				return errors.WithStack(s.bindMember(stmt, member))
			},
		})
		if err != nil {
			if isUniqueConstraintErr(err) {
				return errors.Wrapf(ErrAlreadyExists, "member '%s'", email)
			}

			return errors.WithStack(err)
		}

		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return member, nil
}

// FindOrCreateMember returns the member matching the given identity, creating it on first login.
func (s *Store) FindOrCreateMember(ctx context.Context, subject, provider, email, nickname string) (*Member, error) {
	var member *Member

	err := s.Tx(ctx, func(conn *sqlite.Conn) error {
		query := fmt.Sprintf(`SELECT %s FROM members WHERE subject = ? AND provider = ? LIMIT 1`, memberAttributes)
		err := sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
			Args: []any{subject, provider},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				member = &Member{}
				return errors.WithStack(s.bindMember(stmt, member))
			},
		})
		if err != nil {
			return errors.WithStack(err)
		}

		if member != nil {
			return nil
		}

		query = fmt.Sprintf(`
			INSERT INTO members
				(subject, provider, email, nickname, role, referral_code, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?) RETURNING %s;`,
			memberAttributes,
		)

		now := time.Now().UTC().Unix()

		err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
			Args: []any{subject, provider, normalizeEmail(email), nickname, string(constants.RoleMember), xid.New().String(), now, now},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				member = &Member{}
				return errors.WithStack(s.bindMember(stmt, member))
			},
		})
		if err != nil {
			return errors.WithStack(err)
		}

		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return member, nil
}

// Authenticate returns the password member matching the given credentials.
func (s *Store) Authenticate(ctx context.Context, email, password string) (*Member, error) {
	var member *Member

	err := s.Do(ctx, func(conn *sqlite.Conn) error {
		query := fmt.Sprintf(`SELECT %s FROM members WHERE provider = ? AND email = ? LIMIT 1`, memberAttributes)
		return errors.WithStack(sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
			Args: []any{ProviderPassword, normalizeEmail(email)},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				member = &Member{}
				return errors.WithStack(s.bindMember(stmt, member))
			},
		}))
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if member == nil || !verifyPassword([]byte(password), member.PasswordHash) {
		return nil, errors.WithStack(ErrInvalidCredentials)
	}

	return member, nil
}

func (s *Store) GetMember(ctx context.Context, id int64) (*Member, error) {
	var member *Member

	err := s.Do(ctx, func(conn *sqlite.Conn) error {
		query := fmt.Sprintf(`SELECT %s FROM members WHERE id = ? LIMIT 1`, memberAttributes)
		return errors.WithStack(sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
			Args: []any{id},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				member = &Member{}
				return errors.WithStack(s.bindMember(stmt, member))
			},
		}))
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if member == nil {
		return nil, errors.Wrapf(ErrNotFound, "member %d", id)
	}

	return member, nil
}

func (s *Store) FindMemberByReferralCode(ctx context.Context, code string) (*Member, error) {
	var member *Member

	err := s.Do(ctx, func(conn *sqlite.Conn) error {
		m, err := s.findMemberByReferralCode(conn, code)
		if err != nil {
			return errors.WithStack(err)
		}

		member = m

		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return member, nil
}

func (s *Store) findMemberByReferralCode(conn *sqlite.Conn, code string) (*Member, error) {
	var member *Member

	query := fmt.Sprintf(`SELECT %s FROM members WHERE referral_code = ? LIMIT 1`, memberAttributes)
	err := sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		Args: []any{strings.TrimSpace(code)},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			member = &Member{}
			return errors.WithStack(s.bindMember(stmt, member))
		},
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if member == nil {
		return nil, errors.Wrapf(ErrNotFound, "referral code '%s'", code)
	}

	return member, nil
}

// ListReferrals returns the members directly sponsored by the given member, oldest first.
func (s *Store) ListReferrals(ctx context.Context, sponsorID int64) ([]*Member, error) {
	members := make([]*Member, 0)

	err := s.Do(ctx, func(conn *sqlite.Conn) error {
		query := fmt.Sprintf(`SELECT %s FROM members WHERE sponsor_id = ? ORDER BY created_at, id`, memberAttributes)
		return errors.WithStack(sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
			Args: []any{sponsorID},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				member := &Member{}
				if err := s.bindMember(stmt, member); err != nil {
					return errors.WithStack(err)
				}

				members = append(members, member)
				return nil
			},
		}))
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return members, nil
}

func (s *Store) CountReferrals(ctx context.Context, sponsorID int64) (int64, error) {
	return s.count(ctx, "SELECT COUNT(*) FROM members WHERE sponsor_id = ?", sponsorID)
}

func (s *Store) CountMembers(ctx context.Context) (int64, error) {
	return s.count(ctx, "SELECT COUNT(*) FROM members")
}

// TouchMember records a connection of the member and updates its role.
func (s *Store) TouchMember(ctx context.Context, id int64, role constants.Role) error {
	if !role.Valid() {
		return errors.Wrapf(constants.ErrInvalidRole, "role '%s'", role)
	}

	return s.Tx(ctx, func(conn *sqlite.Conn) error {
		now := time.Now().UTC().Unix()

		return errors.WithStack(sqlitex.Execute(conn, `UPDATE members SET connected_at = ?, role = ?, updated_at = ? WHERE id = ?`, &sqlitex.ExecOptions{
			Args: []any{now, string(role), now, id},
		}))
	})
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func hashPassword(password string) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return hash, nil
}

func verifyPassword(password, hash []byte) bool {
	if len(hash) == 0 {
		return false
	}

	return bcrypt.CompareHashAndPassword(hash, password) == nil
}

// ListMembers returns a page of members, newest first.
func (s *Store) ListMembers(ctx context.Context, offset, limit int) ([]*Member, error) {
	members := make([]*Member, 0, limit)

	err := s.Do(ctx, func(conn *sqlite.Conn) error {
		query := fmt.Sprintf(`SELECT %s FROM members ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`, memberAttributes)
		return errors.WithStack(sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
			Args: []any{limit, offset},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				member := &Member{}
				if err := s.bindMember(stmt, member); err != nil {
					return errors.WithStack(err)
				}

				members = append(members, member)
				return nil
			},
		}))
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return members, nil
}

func (s *Store) UpdateMemberRole(ctx context.Context, id int64, role constants.Role) error {
	if !role.Valid() {
		return errors.Wrapf(constants.ErrInvalidRole, "role '%s'", role)
	}

	return s.Tx(ctx, func(conn *sqlite.Conn) error {
		err := sqlitex.Execute(conn, `UPDATE members SET role = ?, updated_at = ? WHERE id = ?`, &sqlitex.ExecOptions{
			Args: []any{string(role), time.Now().UTC().Unix(), id},
		})
		if err != nil {
			return errors.WithStack(err)
		}

		if conn.Changes() == 0 {
			return errors.Wrapf(ErrNotFound, "member %d", id)
		}

		return nil
	})
}
