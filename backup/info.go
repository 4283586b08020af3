// info.go - backup.info metadata file
//
// (c) 2025 Sudhi Herle <sudhi@herle.net>
//
// Licensing Terms: GPLv2
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package backup

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	pgbackup "github.com/opencoff/go-pgbackup"
)

// backup.info keys consumed by this module
const (
	InfoLabel  = "LABEL"
	InfoValid  = "VALID"
	InfoKeep   = "KEEP"
	InfoBackup = "BACKUP"
)

// infoFile is the metadata file inside every backup directory
const infoFile = "backup.info"

// ReadInfo parses the backup.info inside backup directory 'dir' into
// a key/value map. The file is plain "KEY=VALUE" text, one pair per
// line; blank lines and '#' comments are skipped.
func ReadInfo(dir string) (map[string]string, error) {
	nm := join(dir, infoFile)
	fd, err := os.Open(nm)
	if err != nil {
		return nil, &Error{"read-info", nm, err}
	}
	defer fd.Close()

	kv := make(map[string]string)
	sc := bufio.NewScanner(fd)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		k, v, ok := strings.Cut(line, "=")
		if !ok {
			return nil, &Error{"read-info", nm,
				fmt.Errorf("malformed line %q", line)}
		}
		kv[k] = v
	}

	if err := sc.Err(); err != nil {
		return nil, &Error{"read-info", nm, err}
	}
	return kv, nil
}

// UpdateInfo rewrites one key of the backup.info inside backup
// directory 'dir', preserving every other pair. The file is replaced
// atomically.
func UpdateInfo(dir, key, value string) error {
	kv, err := ReadInfo(dir)
	if err != nil {
		return err
	}
	kv[key] = value

	// stable output order keeps the file diffable
	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	nm := join(dir, infoFile)
	sf, err := pgbackup.NewSafeFile(nm, pgbackup.OPT_OVERWRITE, os.O_WRONLY, 0644)
	if err != nil {
		return &Error{"update-info", nm, err}
	}
	defer sf.Abort()

	for _, k := range keys {
		if _, err := fmt.Fprintf(sf, "%s=%s\n", k, kv[k]); err != nil {
			return &Error{"update-info", nm, err}
		}
	}

	if err := sf.Close(); err != nil {
		return &Error{"update-info", nm, err}
	}
	return nil
}

// readBackup builds a Backup record from the backup.info under 'dir';
// 'label' is the directory basename and stands in when the file does
// not name one.
func readBackup(dir, label string) (*Backup, error) {
	kv, err := ReadInfo(dir)
	if err != nil {
		return nil, err
	}

	b := &Backup{
		Label: label,
		Valid: ValidUnknown,
	}

	if v, ok := kv[InfoLabel]; ok {
		b.Label = v
	}

	switch kv[InfoValid] {
	case "1":
		b.Valid = ValidTrue
	case "0":
		b.Valid = ValidFalse
	}

	if v, ok := kv[InfoKeep]; ok {
		b.Keep = v == "true" || v == "1"
	}

	if v, ok := kv[InfoBackup]; ok {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			b.Size = n
		}
	}

	return b, nil
}
