package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const seed = `0123456789;Lion King Figure;Disney;19.99;5;6;A
2000000001;Teddy;Steiff;25.0;1;3;Plush;M
4000000002;Brain Teaser;Thinkfun;9.99;3;8;L
7000000003;Catan;Kosmos;45.5;2;10;3-4;Klaus Teuber
`

func seedFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "toys.txt")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	return string(b)
}

func TestListPrintsInventoryOrder(t *testing.T) {
	path := seedFile(t, seed)
	out, _, err := run(t, "--data", path, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %q", out)
	}
	if !strings.HasPrefix(lines[0], "Toy Type: Figure, Serial Number: 0123456789") {
		t.Fatalf("unexpected first line %q", lines[0])
	}
	if !strings.Contains(lines[3], "Catan") {
		t.Fatalf("unexpected last line %q", lines[3])
	}
}

func TestListCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "res", "toys.txt")
	out, _, err := run(t, "--data", path, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if strings.TrimSpace(out) != "(no toys in inventory)" {
		t.Fatalf("unexpected output %q", out)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file to be created: %v", err)
	}
}

func TestSearch(t *testing.T) {
	path := seedFile(t, seed)
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"--serial", "4000000002"}, "Brain Teaser"},
		{[]string{"--name", "teddy"}, "Teddy"},
		{[]string{"--category", "board game"}, "Catan"},
		{[]string{"--name", "zebra"}, "no matching toys"},
	}
	for _, c := range cases {
		out, _, err := run(t, append([]string{"--data", path, "search"}, c.args...)...)
		if err != nil {
			t.Fatalf("search %v: %v", c.args, err)
		}
		if !strings.Contains(out, c.want) {
			t.Fatalf("search %v: expected %q in %q", c.args, c.want, out)
		}
	}

	if _, _, err := run(t, "--data", path, "search", "--serial", "12"); err == nil {
		t.Fatalf("expected malformed serial error")
	}
	if _, _, err := run(t, "--data", path, "search"); err == nil {
		t.Fatalf("expected missing flag error")
	}
}

func TestBuyDecrementsAndRemoves(t *testing.T) {
	path := seedFile(t, seed)
	out, _, err := run(t, "--data", path, "buy", "0123456789")
	if err != nil {
		t.Fatalf("buy: %v", err)
	}
	if strings.TrimSpace(out) != "Lion King Figure: purchased, 4 remaining" {
		t.Fatalf("unexpected output %q", out)
	}
	if !strings.Contains(readFile(t, path), "0123456789;Lion King Figure;Disney;19.99;4;6;A\n") {
		t.Fatalf("expected decremented record, got %q", readFile(t, path))
	}

	out, _, err = run(t, "--data", path, "buy", "2000000001")
	if err != nil {
		t.Fatalf("buy last: %v", err)
	}
	if !strings.Contains(out, "last unit sold, item removed") {
		t.Fatalf("unexpected output %q", out)
	}
	if strings.Contains(readFile(t, path), "2000000001") {
		t.Fatalf("sold out toy should be gone")
	}

	if _, _, err := run(t, "--data", path, "buy", "9999999999"); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAddAndRemove(t *testing.T) {
	path := seedFile(t, seed)
	out, _, err := run(t, "--data", path, "add",
		"--serial", "5000000005", "--name", "Globe", "--brand", "Ravensburger",
		"--price", "30", "--count", "2", "--age", "10", "--puzzle-type", "c")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !strings.HasPrefix(out, "added: Toy Type: Puzzle") {
		t.Fatalf("unexpected output %q", out)
	}
	if !strings.HasSuffix(readFile(t, path), "5000000005;Globe;Ravensburger;30.0;2;10;C\n") {
		t.Fatalf("expected appended record, got %q", readFile(t, path))
	}

	_, _, err = run(t, "--data", path, "add",
		"--serial", "5000000005", "--name", "Again", "--price", "1", "--count", "1", "--age", "1", "--puzzle-type", "C")
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected duplicate error, got %v", err)
	}

	_, _, err = run(t, "--data", path, "add", "--kind", "Figure",
		"--serial", "5000000006", "--name", "Mismatch", "--price", "1", "--count", "1", "--age", "1", "--puzzle-type", "C")
	if err == nil {
		t.Fatalf("expected kind/prefix mismatch error")
	}

	out, _, err = run(t, "--data", path, "remove", "7000000003")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if !strings.Contains(out, "removed: Toy Type: BoardGame") {
		t.Fatalf("unexpected output %q", out)
	}
	if strings.Contains(readFile(t, path), "Catan") {
		t.Fatalf("removed toy still persisted")
	}
}

func TestSuggest(t *testing.T) {
	path := seedFile(t, seed)
	out, _, err := run(t, "--data", path, "suggest", "--min-age", "6", "--max-price", "20")
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 || !strings.Contains(lines[0], "Lion King Figure") || !strings.Contains(lines[1], "Brain Teaser") {
		t.Fatalf("unexpected suggestions %q", out)
	}

	out, _, err = run(t, "--data", path, "suggest", "--category", "Animal", "--max-price", "5")
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if strings.TrimSpace(out) != "no toys match" {
		t.Fatalf("unexpected output %q", out)
	}

	if _, _, err := run(t, "--data", path, "suggest", "--max-price", "cheap"); err == nil {
		t.Fatalf("expected price error")
	}
	if _, _, err := run(t, "--data", path, "suggest", "--category", "Robot"); err == nil {
		t.Fatalf("expected category error")
	}
}

func TestCheckReportsBadRecords(t *testing.T) {
	path := seedFile(t, seed+"bad;record\n0123456789;Copy;X;1.0;1;1;A\n")
	out, stderr, err := run(t, "--data", path, "check")
	if err == nil || !strings.Contains(err.Error(), "2 invalid record(s)") {
		t.Fatalf("expected check failure, got %v", err)
	}
	if !strings.Contains(out, "line 5:") || !strings.Contains(out, "line 6:") {
		t.Fatalf("expected line diagnostics, got %q", out)
	}
	if !strings.Contains(stderr, "skipping inventory record") {
		t.Fatalf("expected warning log, got %q", stderr)
	}

	clean := seedFile(t, seed)
	out, _, err = run(t, "--data", clean, "check")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if strings.TrimSpace(out) != "4 records ok" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestConfigFileAndMetrics(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "toys.db")
	cfgPath := filepath.Join(dir, "toyinventory.yaml")
	body := "storage:\n  driver: sqlite\n  path: " + dbPath + "\nlog:\n  level: debug\n  format: json\nmetrics:\n  exporter: prometheus\n"
	if err := os.WriteFile(cfgPath, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, _, err := run(t, "--config", cfgPath, "add",
		"--serial", "1000000004", "--name", "Knight", "--price", "7.25", "--count", "1", "--age", "6", "--classification", "H")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	out, stderr, err := run(t, "--config", cfgPath, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "Knight") {
		t.Fatalf("expected sqlite backed toy, got %q", out)
	}
	if !strings.Contains(stderr, `"toyinventory_operations_total"`) {
		t.Fatalf("expected metrics debug log, got %q", stderr)
	}

	if _, _, err := run(t, "--config", filepath.Join(dir, "missing.yaml"), "list"); err == nil {
		t.Fatalf("expected missing config error")
	}
	if _, _, err := run(t, "--data", filepath.Join(dir, "x.txt"), "--log-level", "loud", "list"); err == nil {
		t.Fatalf("expected bad log level error")
	}
}
