package constants

const (
	PasswordMinLength = 8
	PasswordMaxLength = 72 // bcrypt ignores bytes past 72
	NicknameMaxLength = 64
	EmailMaxLength    = 254
	MessageMaxLength  = 2000

	// ReferralCodeLength is the length of an xid in its string form.
	ReferralCodeLength = 20
)
