package constants

import "fmt"

const (
	FieldEmail           = "Email"
	FieldPassword        = "Password"
	FieldPasswordConfirm = "Password confirmation"
	FieldNickname        = "Name"
	FieldMessage         = "Message"
	FieldReferralCode    = "Referral code"
)

const (
	MessageInvalidCredentials = "Invalid email or password."
	MessageTooManyAttempts    = "Too many attempts, please retry in a moment."
	MessageRegistrationClosed = "Registration is currently closed."
	MessageContactSent        = "Thank you, your message has been sent."
	MessageWelcome            = "Welcome aboard!"
	MessageUnexpected         = "An unexpected error occurred, please retry later."
)

func Required(field string) string {
	return fmt.Sprintf("%s is required.", field)
}

func MinLength(field string, n int) string {
	return fmt.Sprintf("%s must be at least %d characters.", field, n)
}

func MaxLength(field string, n int) string {
	return fmt.Sprintf("%s must be at most %d characters.", field, n)
}

func InvalidEmail() string {
	return "Please enter a valid email address."
}

func Mismatch(field, other string) string {
	return fmt.Sprintf("%s does not match %s.", field, other)
}

func AlreadyRegistered(email string) string {
	return fmt.Sprintf("An account already exists for %s.", email)
}

func UnknownReferral(code string) string {
	return fmt.Sprintf("Referral code '%s' does not match any member.", code)
}
