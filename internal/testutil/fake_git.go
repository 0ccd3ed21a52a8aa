// Package testutil provides test doubles shared across fragit's test suites.
package testutil

// FakeGit simulates the version-control collaborator: settable configuration
// and branch, a scripted exit status for Add, and a record of staged paths.
type FakeGit struct {
	Config    map[string]string
	Branch    string
	AddStatus int
	AddErr    error

	// Added records every path passed to Add, in order.
	Added []string
}

// NewFakeGit returns a FakeGit on branch "master" with no configuration.
func NewFakeGit() *FakeGit {
	return &FakeGit{
		Config: make(map[string]string),
		Branch: "master",
	}
}

// SetConfig sets a git configuration value.
func (f *FakeGit) SetConfig(key, value string) {
	f.Config[key] = value
}

// SetBranch sets the current branch name.
func (f *FakeGit) SetBranch(branch string) {
	f.Branch = branch
}

// ConfigValue implements git.Git.
func (f *FakeGit) ConfigValue(key string) (string, bool) {
	v, ok := f.Config[key]
	return v, ok
}

// CurrentBranch implements git.Git.
func (f *FakeGit) CurrentBranch() (string, error) {
	return f.Branch, nil
}

// Add implements git.Git, recording the call and returning the scripted status.
func (f *FakeGit) Add(path string) (int, error) {
	f.Added = append(f.Added, path)
	return f.AddStatus, f.AddErr
}
