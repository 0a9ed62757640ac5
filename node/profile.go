package node

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// A Profile describes how the nodes of one target system are run.
//
// Every field except LogFileName and IsActiveLine is optional.
type Profile struct {
	// Name of the log file inside the log directory of a node
	LogFileName string

	// Returns true for the log line announcing that the node is ready for clients
	IsActiveLine func(line string) bool

	// Command starting the node process. Called without the lock of n held.
	// Default value is bash <workspace>/server.sh <trial id> <server id> <instance id>.
	StartCommand func(n *ServerNode) []string

	// Path, relative to the log directory, of a file holding the pid of an additional process that must be killed on shutdown
	PidFile string

	// Subdirectory of the persistent data directory holding the data of the node
	DataSubdir string

	// Called after the node process has been killed, without the lock of n held
	ShutdownExtra func(n *ServerNode) error
}

// Matches lines containing s
func ContainsLine(s string) func(string) bool {
	return func(line string) bool {
		return strings.Contains(line, s)
	}
}

// Matches lines matching the regular expression
func MatchLine(re *regexp.Regexp) func(string) bool {
	return re.MatchString
}

func defaultStartCommand(n *ServerNode) []string {
	return []string{
		"bash",
		filepath.Join(n.Workspace(), "server.sh"),
		strconv.Itoa(n.trialId),
		strconv.Itoa(n.serverId),
		strconv.Itoa(n.instanceId),
	}
}
