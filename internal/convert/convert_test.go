package convert

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/thywilljoshua/index-converter/internal/extract"
	"github.com/thywilljoshua/index-converter/internal/index"
)

const sample = "Book of Fruit\nContents\n" + index.Marker + "\n\nA\nApples\t1:5,1:6\nBananas\t2:9\nB\nBlueberries\t7:1, 3 : 12a\n"

func writeSource(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun(t *testing.T) {
	src := writeSource(t, "fruit.txt", sample)
	out := filepath.Join(t.TempDir(), "CSV", "fruit.csv")

	res, err := Run(context.Background(), src, Config{OutPath: out})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if res.Rows != 5 || res.Dividers != 2 || res.Subjects != 3 || res.Output != out {
		t.Errorf("unexpected result: %+v", res)
	}

	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	want := "Subject,Book 1,Book 2,Book 3,Book 4,Book 5,Book 6\r\n" +
		"A,,,,,,\r\n" +
		"Apples,\"\"\"5, 6\"\"\",,,,,\r\n" +
		"Bananas,,\"\"\"9\"\"\",,,,\r\n" +
		"B,,,,,,\r\n" +
		"Blueberries,,,\"\"\"12a\"\"\",,,\r\n"
	if string(b) != want {
		t.Errorf("CSV mismatch:\ngot:\n%s\nwant:\n%s", b, want)
	}
}

func TestRunNoMarker(t *testing.T) {
	src := writeSource(t, "plain.txt", "Just a book with no index\nApples\t1:2\n")
	out := filepath.Join(t.TempDir(), "plain.csv")

	_, err := Run(context.Background(), src, Config{OutPath: out})
	if !errors.Is(err, index.ErrNoIndexMarker) {
		t.Fatalf("expected ErrNoIndexMarker, got %v", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("CSV should not be written: %v", err)
	}
}

func TestRunUnsupported(t *testing.T) {
	src := writeSource(t, "book.odt", sample)
	_, err := Run(context.Background(), src, Config{OutPath: filepath.Join(t.TempDir(), "x.csv")})
	if !errors.Is(err, extract.ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
}

func TestRunRequiresOutPath(t *testing.T) {
	if _, err := Run(context.Background(), "book.txt", Config{}); err == nil {
		t.Error("expected error without OutPath")
	}
}

type flakyExtractor struct {
	failures int
	calls    int
}

func (f *flakyExtractor) Text(ctx context.Context, path string) (string, error) {
	f.calls++
	if f.calls <= f.failures {
		return "", errors.New("document locked")
	}
	return sample, nil
}

func TestRunWithRetry(t *testing.T) {
	flaky := &flakyExtractor{failures: 2}
	cfg := Config{
		OutPath:    filepath.Join(t.TempDir(), "fruit.csv"),
		Extractors: extract.Registry{extract.KindPDF: flaky},
	}
	var failed []int
	res, err := RunWithRetry(context.Background(), "fruit.pdf", cfg, 3, func(attempt int, err error) {
		failed = append(failed, attempt)
	})
	if err != nil {
		t.Fatalf("RunWithRetry() error: %v", err)
	}
	if res.Rows != 5 {
		t.Errorf("Rows = %d, want 5", res.Rows)
	}
	if len(failed) != 2 || failed[0] != 1 || failed[1] != 2 {
		t.Errorf("failed attempts = %v, want [1 2]", failed)
	}
}

func TestRunWithRetryGivesUp(t *testing.T) {
	flaky := &flakyExtractor{failures: 10}
	cfg := Config{
		OutPath:    filepath.Join(t.TempDir(), "fruit.csv"),
		Extractors: extract.Registry{extract.KindPDF: flaky},
	}
	_, err := RunWithRetry(context.Background(), "fruit.pdf", cfg, 3, nil)
	if err == nil {
		t.Fatal("expected error after exhausting attempts")
	}
	if flaky.calls != 3 {
		t.Errorf("extractor called %d times, want 3", flaky.calls)
	}
}

func TestRunWithRetryCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	flaky := &flakyExtractor{}
	cfg := Config{
		OutPath:    filepath.Join(t.TempDir(), "fruit.csv"),
		Extractors: extract.Registry{extract.KindPDF: flaky},
	}
	if _, err := RunWithRetry(ctx, "fruit.pdf", cfg, 3, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if flaky.calls != 0 {
		t.Errorf("extractor called %d times after cancel", flaky.calls)
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "Subject,Book 1,Book 2,Book 3,Book 4,Book 5,Book 6\r\n" {
		t.Errorf("WriteCSV(nil) = %q", got)
	}
}
