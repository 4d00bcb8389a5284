package render

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// Stamp identifies one run; it ends up in every file name the run writes.
type Stamp struct {
	id int64
}

// Jan 1, 2020 (to make filenames a little smaller)
const epoch2020 = 1577836800

// NewStamp returns a stamp based on the current time.
func NewStamp() Stamp {
	return Stamp{id: time.Now().UnixNano() - epoch2020*int64(time.Second)}
}

// ParseStamp reads back the hex stamp part of a filename.
func ParseStamp(hexStamp string) (Stamp, error) {
	id, err := strconv.ParseInt(hexStamp, 16, 64)
	if err != nil {
		return Stamp{}, fmt.Errorf("bad stamp %q: %w", hexStamp, err)
	}
	return Stamp{id: id}, nil
}

// ID returns the numeric stamp.
func (s Stamp) ID() int64 {
	return s.id
}

func (s Stamp) String() string {
	return strconv.FormatInt(s.id, 16)
}

// Filename returns a string to use for this file: the prefix, the current
// git commit when there is one, the stamp and the extension.
func (s Stamp) Filename(prefix, ext string) string {
	if hash := gitHash(); hash != "" {
		prefix += hash + "-"
	}
	return fmt.Sprintf("%s%x%s", prefix, s.id, ext)
}

func gitHash() string {
	cmdOut, err := exec.Command("git", "rev-parse", "--verify", "HEAD").Output()
	if err != nil {
		return ""
	}
	hash := strings.TrimSpace(string(cmdOut))
	if len(hash) > 7 {
		hash = hash[:7]
	}
	return hash
}
