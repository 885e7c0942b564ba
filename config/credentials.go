package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// APIKeyVar is the credential file entry holding the Places API key.
const APIKeyVar = "API_KEY"

// CredentialStatus reports how a credential lookup ended.
type CredentialStatus int

const (
	CredentialFound CredentialStatus = iota
	CredentialNotFound
	CredentialUnreadable
)

func (s CredentialStatus) String() string {
	switch s {
	case CredentialFound:
		return "found"
	case CredentialNotFound:
		return "not found"
	case CredentialUnreadable:
		return "unreadable"
	default:
		return fmt.Sprintf("CredentialStatus(%d)", int(s))
	}
}

// Credential is the outcome of LoadAPIKey. Key is only set when Status is
// CredentialFound; Err carries the cause when Status is CredentialUnreadable.
type Credential struct {
	Key    string
	Status CredentialStatus
	Err    error
}

// LoadAPIKey scans the file at path for the first line starting with
// "API_KEY=" and returns the rest of that line as the key. The file is not
// parsed as dotenv: other lines may hold anything. A file that cannot be
// opened or read is CredentialUnreadable; one without a matching line, or
// whose first match is blank, is CredentialNotFound.
func LoadAPIKey(path string) Credential {
	f, err := os.Open(path)
	if err != nil {
		return unreadable(path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, ok := strings.CutPrefix(scanner.Text(), APIKeyVar+"=")
		if !ok {
			continue
		}
		if strings.TrimSpace(key) == "" {
			return Credential{Status: CredentialNotFound}
		}
		return Credential{Key: key, Status: CredentialFound}
	}
	if err := scanner.Err(); err != nil {
		return unreadable(path, err)
	}
	return Credential{Status: CredentialNotFound}
}

func unreadable(path string, err error) Credential {
	return Credential{
		Status: CredentialUnreadable,
		Err:    fmt.Errorf("credentials: read %q: %w", path, err),
	}
}
