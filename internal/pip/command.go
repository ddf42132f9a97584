// Package pip builds argument vectors for the pip executable.
// Commands are plain token sequences handed to os/exec as discrete
// arguments, so no shell quoting or escaping is ever involved.
package pip

import "os/exec"

// Command is an ordered token sequence for one pip invocation.
// The executable is the first token. A Command has no identity beyond
// its value and is never mutated after construction.
type Command []string

// Executable returns the first token (the program to spawn).
func (c Command) Executable() string {
	if len(c) == 0 {
		return ""
	}
	return c[0]
}

// Args returns the tokens after the executable, in order.
func (c Command) Args() []string {
	if len(c) == 0 {
		return nil
	}
	return c[1:]
}

// Install builds the command for installing a package from the given index URL.
func Install(executable, pkg, indexURL string) Command {
	return Command{executable, "install", "-i", indexURL, pkg}
}

// Upgrade builds the command for upgrading an already installed package
// from the given index URL.
func Upgrade(executable, pkg, indexURL string) Command {
	return Command{executable, "install", "--upgrade", "-i", indexURL, pkg}
}

// Uninstall builds the command for removing a package. Uninstalling never
// contacts an index, so no source URL is taken.
func Uninstall(executable, pkg string) Command {
	return Command{executable, "uninstall", "-y", pkg}
}

// DefaultExecutable resolves the pip binary from PATH, preferring pip3.
// Falls back to "pip3" when neither is found; the runner surfaces the
// spawn failure with a descriptive message at execution time.
func DefaultExecutable() string {
	for _, name := range []string{"pip3", "pip"} {
		if _, err := exec.LookPath(name); err == nil {
			return name
		}
	}
	return "pip3"
}
