package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// stubExec records which commands the REPL dispatched.
type stubExec struct {
	signedIn bool
	calls    []string
	args     []string
}

func (s *stubExec) record(name, arg string) error {
	s.calls = append(s.calls, name)
	s.args = append(s.args, arg)
	return nil
}

func (s *stubExec) isSignedIn() bool                             { return s.signedIn }
func (s *stubExec) Register(ctx context.Context) error           { return s.record("register", "") }
func (s *stubExec) Login(ctx context.Context) error              { return s.record("login", "") }
func (s *stubExec) Logout(ctx context.Context) error             { return s.record("logout", "") }
func (s *stubExec) List(ctx context.Context) error               { return s.record("list", "") }
func (s *stubExec) Search(ctx context.Context, text string) error {
	return s.record("search", text)
}
func (s *stubExec) Category(ctx context.Context, path string) error {
	return s.record("category", path)
}
func (s *stubExec) Show(ctx context.Context, id string) error  { return s.record("show", id) }
func (s *stubExec) Add(ctx context.Context, id string) error   { return s.record("add", id) }
func (s *stubExec) Cart(ctx context.Context) error             { return s.record("cart", "") }
func (s *stubExec) Checkout(ctx context.Context) error         { return s.record("checkout", "") }
func (s *stubExec) Publish(ctx context.Context) error          { return s.record("publish", "") }

func runScript(t *testing.T, stub *stubExec, script string) []string {
	t.Helper()
	var printed []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		for _, v := range a {
			if s, ok := v.(string); ok {
				printed = append(printed, s)
			}
		}
		return 0, nil
	}
	defer func() { printlnFn = orig }()

	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), stub, func() string { return "guest | cart:0" }, scanner)
	return printed
}

func TestREPLDispatch(t *testing.T) {
	stub := &stubExec{}
	runScript(t, stub, "list\nsearch watch\ncategory /electronics\nadd i1\ncart\nexit\n")

	require.Equal(t, []string{"list", "search", "category", "add", "cart"}, stub.calls)
	require.Equal(t, []string{"", "watch", "/electronics", "i1", ""}, stub.args)
}

func TestREPLUnknownCommand(t *testing.T) {
	stub := &stubExec{}
	printed := runScript(t, stub, "frobnicate\nexit\n")

	require.Empty(t, stub.calls)
	require.Contains(t, printed, "Unknown command:")
}

func TestREPLExitsOnEOF(t *testing.T) {
	stub := &stubExec{}
	runScript(t, stub, "list\n") // no exit; scanner hits EOF

	require.Equal(t, []string{"list"}, stub.calls)
}

func TestREPLHelpReflectsAuthState(t *testing.T) {
	stub := &stubExec{}
	printed := runScript(t, stub, "help\nexit\n")
	require.Contains(t, strings.Join(printed, "\n"), "register, login")

	stub = &stubExec{signedIn: true}
	printed = runScript(t, stub, "help\nexit\n")
	require.Contains(t, strings.Join(printed, "\n"), "logout")
}
