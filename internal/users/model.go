// Package users holds the account records of a Tasklists instance and the
// store that loads them from, and appends them to, the users file.
package users

import "github.com/dmitrijs2005/tasklists/internal/cryptox"

// User is a single account. The encrypted password is only meaningful
// together with the key it was sealed under, so both are always replaced
// together.
type User struct {
	fullName          string
	username          string
	encryptedPassword []byte
	key               cryptox.Key
}

// NewUser builds a record. A non-empty password is encrypted immediately
// under a freshly generated key; an empty one leaves the credential unset.
func NewUser(fullName, username, password string) (*User, error) {
	u := &User{fullName: fullName, username: username}
	if password != "" {
		if err := u.SetPassword(password); err != nil {
			return nil, err
		}
	}
	return u, nil
}

// newStoredUser rebuilds a record from values read back from the users file.
func newStoredUser(fullName, username string, encryptedPassword, key []byte) *User {
	return &User{
		fullName:          fullName,
		username:          username,
		encryptedPassword: encryptedPassword,
		key:               key,
	}
}

func (u *User) String() string {
	return u.fullName
}

func (u *User) FullName() string {
	return u.fullName
}

func (u *User) SetFullName(fullName string) {
	u.fullName = fullName
}

func (u *User) Username() string {
	return u.username
}

func (u *User) SetUsername(username string) {
	u.username = username
}

// SetPassword rotates the key and re-encrypts. The previous key is never reused.
func (u *User) SetPassword(password string) error {
	key, err := cryptox.GenerateKey()
	if err != nil {
		return err
	}

	encrypted, err := cryptox.Encrypt(password, key)
	if err != nil {
		return err
	}

	u.key = key
	u.encryptedPassword = encrypted
	return nil
}

// Password decrypts the stored password. It fails with an error wrapping
// common.ErrCrypto if the credential is unset or does not match its key.
func (u *User) Password() (string, error) {
	return cryptox.Decrypt(u.encryptedPassword, u.key)
}

// EncryptedPassword returns the textual ciphertext as persisted.
func (u *User) EncryptedPassword() []byte {
	return u.encryptedPassword
}

// Key returns the textual key as persisted.
func (u *User) Key() cryptox.Key {
	return u.key
}

// HasPassword reports whether a credential has been set.
func (u *User) HasPassword() bool {
	return len(u.encryptedPassword) > 0 && len(u.key) > 0
}
