package safety

import (
	"testing"

	"github.com/siahcodes/quickcmd/pkg/model"
	"github.com/stretchr/testify/assert"
)

func TestIsDestructive(t *testing.T) {
	cases := []struct {
		command string
		want    bool
	}{
		{"rm -rf / --no-preserve-root", true},
		{"RM -RF / tmp", true},
		{"del /f /s /q C:\\Windows", true},
		{"Format-Volume -DriveLetter D", true},
		{"fdisk /dev/sda", true},
		{"mkfs.ext4 /dev/sdb1", true},
		{"diskpart /s clean.txt", true},
		{"Get-Service", false},
		{"rm notes.txt", false},
		{"", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, IsDestructive(tc.command), tc.command)
	}
}

func TestValidate_FlagsDestructive(t *testing.T) {
	s := Validate(model.Suggestion{
		Command:     "del /f /s /q C:\\temp",
		Description: "Wipe temp",
		Shell:       model.ShellPowerShell,
		Warning:     "existing note",
	})

	assert.Equal(t, DestructiveWarning, s.Warning)
}

func TestValidate_TrimsAndKeepsBenign(t *testing.T) {
	s := Validate(model.Suggestion{
		Command:     "  Get-Process  ",
		Description: " running processes ",
		Shell:       model.ShellPowerShell,
		Warning:     "backend note",
	})

	assert.Equal(t, "Get-Process", s.Command)
	assert.Equal(t, "running processes", s.Description)
	assert.Equal(t, "backend note", s.Warning)
}
