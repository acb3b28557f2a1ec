// Package validator holds the field checks shared by services.
package validator

import "net/mail"

const MinPasswordLength = 8

func Email(address string) bool {
	_, err := mail.ParseAddress(address)
	return err == nil
}

func Password(password string) bool {
	return len(password) >= MinPasswordLength
}
