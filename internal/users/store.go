package users

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/dmitrijs2005/tasklists/internal/common"
	"github.com/dmitrijs2005/tasklists/internal/filex"
	"gopkg.in/yaml.v3"
)

// Store is the in-memory list of accounts plus the currently authenticated
// one. It is not safe for concurrent use.
//
// The current user is a plain reference: reloading the list does not touch it.
type Store struct {
	users   []*User
	current *User
}

func NewStore() *Store {
	return &Store{}
}

// Users returns the accounts in load-then-append order.
func (s *Store) Users() []*User {
	out := make([]*User, len(s.users))
	copy(out, s.users)
	return out
}

func (s *Store) Len() int {
	return len(s.users)
}

// Add appends u to the in-memory list without persisting it.
func (s *Store) Add(u *User) {
	s.users = append(s.users, u)
}

// FindByUsername returns the first account whose username matches exactly,
// or nil.
func (s *Store) FindByUsername(username string) *User {
	for _, u := range s.users {
		if u.username == username {
			return u
		}
	}
	return nil
}

func (s *Store) Current() *User {
	return s.current
}

func (s *Store) SetCurrent(u *User) {
	s.current = u
}

func (s *Store) ClearCurrent() {
	s.current = nil
}

// record is one entry of the users file. Pointers tell a missing key
// apart from an empty value.
type record struct {
	Name     *string `yaml:"name"`
	Username *string `yaml:"username"`
	Password *string `yaml:"password"`
	Key      *string `yaml:"key"`
}

func (r record) missing() string {
	switch {
	case r.Name == nil:
		return common.FieldName
	case r.Username == nil:
		return common.FieldUsername
	case r.Password == nil:
		return common.FieldPassword
	case r.Key == nil:
		return common.FieldKey
	}
	return ""
}

// parseUsers decodes a users file. A nil slice with a nil error means the
// source held no document at all.
func parseUsers(data []byte) ([]*User, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStoreLoad, err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.ShortTag() == "!!null" {
		return nil, nil
	}
	if root.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: line %d: expected a list of users", common.ErrStoreLoad, root.Line)
	}

	out := make([]*User, 0, len(root.Content))
	for i, item := range root.Content {
		if item.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: line %d: entry %d is not a mapping", common.ErrStoreLoad, item.Line, i+1)
		}

		var rec record
		if err := item.Decode(&rec); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", common.ErrStoreLoad, item.Line, err)
		}
		if field := rec.missing(); field != "" {
			return nil, fmt.Errorf("%w: line %d: entry %d has no %q", common.ErrStoreLoad, item.Line, i+1, field)
		}

		out = append(out, newStoredUser(*rec.Name, *rec.Username, []byte(*rec.Password), []byte(*rec.Key)))
	}

	return out, nil
}

// Load replaces the list with the accounts read from r. An empty source
// leaves the list as it is. A malformed source returns an error wrapping
// common.ErrStoreLoad and leaves the list as it is.
func (s *Store) Load(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read users: %w", err)
	}

	loaded, err := parseUsers(data)
	if err != nil {
		return err
	}
	if loaded == nil {
		return nil
	}

	s.users = loaded
	return nil
}

// LoadFile is Load over the file at path. A missing file is treated as an
// empty source.
func (s *Store) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if err := s.Load(f); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Append writes u as one new entry of a users file. Every value is
// double-quoted and escaped so it reads back unchanged.
func Append(w io.Writer, u *User) error {
	_, err := fmt.Fprintf(w, "\n- \n  %s: %s \n  %s: %s \n  %s: %s \n  %s: %s \n",
		common.FieldName, strconv.Quote(u.fullName),
		common.FieldUsername, strconv.Quote(u.username),
		common.FieldPassword, strconv.Quote(string(u.encryptedPassword)),
		common.FieldKey, strconv.Quote(string(u.key)),
	)
	return err
}

// AppendFile appends u to the users file at path, creating the file and its
// directory when needed. Existing content is neither read nor validated.
func AppendFile(path string, u *User) (err error) {
	if err := filex.EnsureParentDir(path); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	if err := Append(f, u); err != nil {
		return fmt.Errorf("append to %s: %w", path, err)
	}
	return nil
}
