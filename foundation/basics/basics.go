// Package basics walks through the core language features one snippet at a
// time. Every snippet is deterministic and only writes to the writer it is
// given.
package basics

import (
	"fmt"
	"io"
	"strings"
)

// Snippet is a single self-contained demonstration.
type Snippet struct {
	Name string
	Run  func(w io.Writer)
}

// Snippets returns the demonstrations in the order they are presented.
func Snippets() []Snippet {
	return []Snippet{
		{Name: "Variables", Run: Variables},
		{Name: "Value Semantics", Run: ValueSemantics},
		{Name: "Functions", Run: Functions},
		{Name: "Struct", Run: Structs},
		{Name: "Enum and Pattern Matching", Run: Enums},
		{Name: "Collection Types", Run: Collections},
	}
}

// Run prints the banner followed by every snippet under its own heading.
func Run(w io.Writer) {
	fmt.Fprintln(w, "\nGO BASICS DEMO")
	fmt.Fprintln(w, "==============")

	for _, s := range Snippets() {
		fmt.Fprintf(w, "\n%s Demo:\n", s.Name)
		s.Run(w)
	}
}

// =============================================================================

// Variables shows constants next to variables that are reassigned.
func Variables(w io.Writer) {
	const immutable = 5
	mutable := 10
	fmt.Fprintf(w, "  Immutable: %d, Mutable: %d\n", immutable, mutable)

	mutable = 15
	fmt.Fprintf(w, "  Updated mutable: %d\n", mutable)

	var zero int
	var empty string
	fmt.Fprintf(w, "  Zero values: %d, %q\n", zero, empty)
}

// ValueSemantics shows that assignment and function calls copy values while
// pointers share them.
func ValueSemantics(w io.Writer) {
	s1 := "hello"
	s2 := s1
	s1 = "changed"
	fmt.Fprintf(w, "  s1: %s, s2: %s\n", s1, s2)

	s3 := "world"
	takeCopy(w, s3)
	fmt.Fprintf(w, "  s3 after call: %s\n", s3)

	s4 := giveValue()
	fmt.Fprintf(w, "  s4: %s\n", s4)

	u := User{Username: "bob", SignInCount: 1}
	bumpCopy(u)
	fmt.Fprintf(w, "  After value call: %d\n", u.SignInCount)

	bumpShared(&u)
	fmt.Fprintf(w, "  After pointer call: %d\n", u.SignInCount)
}

func takeCopy(w io.Writer, s string) {
	s = strings.ToUpper(s)
	fmt.Fprintf(w, "  Took a copy of: %s\n", s)
}

func giveValue() string {
	return "returning a value"
}

func bumpCopy(u User) {
	u.SignInCount++
}

func bumpShared(u *User) {
	u.SignInCount++
}

// Functions shows multiple return values and explicit error handling.
func Functions(w io.Writer) {
	q, r := divmod(17, 5)
	fmt.Fprintf(w, "  17 / 5 = %d remainder %d\n", q, r)

	if _, err := safeDivide(1, 0); err != nil {
		fmt.Fprintf(w, "  Error: %s\n", err)
	}

	v, err := safeDivide(10, 4)
	if err == nil {
		fmt.Fprintf(w, "  10 / 4 = %d\n", v)
	}

	double := func(n int) int { return n * 2 }
	fmt.Fprintf(w, "  Closure: %d\n", double(21))
}

func divmod(a, b int) (int, int) {
	return a / b, a % b
}

func safeDivide(a, b int) (int, error) {
	if b == 0 {
		return 0, fmt.Errorf("cannot divide %d by zero", a)
	}
	return a / b, nil
}

// User is the struct used by the demonstrations.
type User struct {
	Username    string
	Email       string
	SignInCount uint64
	Active      bool
}

// String implements the fmt.Stringer interface.
func (u User) String() string {
	return fmt.Sprintf("%s <%s>", u.Username, u.Email)
}

// Structs shows struct literals, field access and methods.
func Structs(w io.Writer) {
	user := User{
		Username:    "alice",
		Email:       "alice@example.com",
		SignInCount: 1,
		Active:      true,
	}

	fmt.Fprintf(w, "  User: %s, %s\n", user.Username, user.Email)
	fmt.Fprintf(w, "  Stringer: %s\n", user)
	fmt.Fprintf(w, "  Active: %t, Sign-ins: %d\n", user.Active, user.SignInCount)
}

// AccountStatus is an enumeration built from typed constants.
type AccountStatus int

// The set of account states.
const (
	Active AccountStatus = iota
	Inactive
	Locked
)

// String implements the fmt.Stringer interface.
func (s AccountStatus) String() string {
	switch s {
	case Active:
		return "active"
	case Inactive:
		return "inactive"
	case Locked:
		return "locked"
	}
	return fmt.Sprintf("AccountStatus(%d)", int(s))
}

// Enums shows typed constants and matching on them with switch.
func Enums(w io.Writer) {
	for _, status := range []AccountStatus{Active, Inactive, Locked} {
		printStatus(w, status)
	}
}

func printStatus(w io.Writer, status AccountStatus) {
	switch status {
	case Active:
		fmt.Fprintln(w, "  Account is active")
	case Inactive:
		fmt.Fprintln(w, "  Account is inactive")
	case Locked:
		fmt.Fprintln(w, "  Account is locked")
	}
}

// Collections shows slices and maps.
func Collections(w io.Writer) {
	numbers := []int{1, 2, 3, 4, 5}
	numbers = append(numbers, 6)
	fmt.Fprintf(w, "  Slice: %v (len %d)\n", numbers, len(numbers))

	scores := make(map[string]int)
	scores["Blue"] = 10
	scores["Red"] = 50
	fmt.Fprintf(w, "  Map: %v\n", scores)

	if score, exists := scores["Green"]; !exists {
		fmt.Fprintf(w, "  Green missing, zero value %d\n", score)
	}
}
