// Corpus smoke check for the normalizer. Walks a directory of .txt files,
// normalizes every line and reports how much text was spelled out, which
// files still carry digits afterwards and whether a second pass over the
// output changes anything.
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/raditotev/bg-text-normalizer/normalizer"
)

const (
	maxWorkers      = 4
	expectedArgs    = 2
	maxLineBytes    = 1 << 20
	stabilitySample = 100 // recheck every Nth line for stability
)

type fileResidual struct {
	path     string
	lines    int
	residual int
	ratio    float64
}

type Stats struct {
	mu               sync.Mutex
	filesScanned     int
	totalBytes       int64
	lines            int
	linesChanged     int
	linesResidual    int
	stableOK         int
	stableFail       int
	residualOutliers int
	fileResiduals    []fileResidual
}

type fileState struct {
	path          string
	totalBytes    int64
	lines         int
	linesChanged  int
	linesResidual int
	stableOK      int
	stableFail    int
	stableLogged  bool
}

func main() {
	if len(os.Args) != expectedArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s <directory>\n", os.Args[0])
		os.Exit(1)
	}

	dirPath := os.Args[1]
	stats := &Stats{}

	var filePaths []string
	err := filepath.WalkDir(dirPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".txt") {
			return nil
		}
		filePaths = append(filePaths, path)
		return nil
	})

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error walking directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Found %d files to process\n", len(filePaths))
	start := time.Now()

	semaphore := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for _, path := range filePaths {
		wg.Add(1)
		semaphore <- struct{}{}
		go func(p string) {
			defer wg.Done()
			defer func() { <-semaphore }()
			processFile(p, stats)
		}(path)
	}

	wg.Wait()

	flagResidualOutliers(stats)

	fmt.Fprintf(os.Stderr, "\nCompleted in %s\n\n", time.Since(start).Round(time.Millisecond))
	printStats(stats)
}

func processFile(path string, stats *Stats) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", path, err)
		return
	}
	defer func() { _ = f.Close() }()

	fileStart := time.Now()
	state := &fileState{path: path}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for scanner.Scan() {
		state.processLine(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
		return
	}

	fmt.Fprintf(os.Stderr, "DONE  %s in %s (%d lines)\n",
		filepath.Base(path), time.Since(fileStart).Round(time.Millisecond), state.lines)

	mergeFileState(state, stats)
}

func (fs *fileState) processLine(line string) {
	fs.totalBytes += int64(len(line))
	fs.lines++

	out := normalizer.Normalize(line)
	if out != line {
		fs.linesChanged++
	}

	residual := strings.ContainsFunc(out, unicode.IsDigit)
	if residual {
		fs.linesResidual++
	}

	// Spot-check that normalized output is a fixed point. Lines with
	// residual digits are declined candidates and legitimately unstable.
	if !residual && fs.lines%stabilitySample == 0 {
		if again := normalizer.Normalize(out); again != out {
			fs.stableFail++
			if !fs.stableLogged {
				logStabilityFailure(fs.path, out, again)
				fs.stableLogged = true
			}
		} else {
			fs.stableOK++
		}
	}
}

func mergeFileState(fs *fileState, stats *Stats) {
	stats.mu.Lock()
	defer stats.mu.Unlock()

	stats.filesScanned++
	stats.totalBytes += fs.totalBytes
	stats.lines += fs.lines
	stats.linesChanged += fs.linesChanged
	stats.linesResidual += fs.linesResidual
	stats.stableOK += fs.stableOK
	stats.stableFail += fs.stableFail

	if fs.lines > 0 {
		ratio := float64(fs.linesResidual) / float64(fs.lines)
		stats.fileResiduals = append(stats.fileResiduals, fileResidual{
			path:     fs.path,
			lines:    fs.lines,
			residual: fs.linesResidual,
			ratio:    ratio,
		})
	}
}

func logStabilityFailure(path, once, twice string) {
	pos, got, want := firstDivergence(once, twice)
	fmt.Fprintf(os.Stderr, "STABILITY_FAIL: %s: first divergence at byte %d (got 0x%02x, want 0x%02x)\n",
		path, pos, got, want)
}

// flagResidualOutliers computes the median residual-digit ratio across all
// files and flags any file whose ratio exceeds 3x the median. Such files
// usually carry number formats the pipeline does not recognize.
func flagResidualOutliers(stats *Stats) {
	if len(stats.fileResiduals) == 0 {
		return
	}

	ratios := make([]float64, len(stats.fileResiduals))
	for i, fr := range stats.fileResiduals {
		ratios[i] = fr.ratio
	}
	med := computeMedian(ratios)

	for _, fr := range stats.fileResiduals {
		if med > 0 && fr.ratio > 3*med {
			stats.residualOutliers++
			fmt.Fprintf(os.Stderr, "RESIDUAL_OUTLIER: %s: %d of %d lines keep digits (ratio %.2f, median %.2f)\n",
				fr.path, fr.residual, fr.lines, fr.ratio, med)
		}
	}
}

// firstDivergence finds the byte position where two strings first differ.
// Returns the position and the differing bytes from each string.
func firstDivergence(original, reconstructed string) (pos int, got, want byte) {
	n := min(len(original), len(reconstructed))
	for i := range n {
		if original[i] != reconstructed[i] {
			return i, reconstructed[i], original[i]
		}
	}
	pos = n
	if pos < len(reconstructed) {
		got = reconstructed[pos]
	}
	if pos < len(original) {
		want = original[pos]
	}
	return pos, got, want
}

func computeMedian(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2 //nolint:mnd // arithmetic mean of two middle values
	}
	return sorted[mid]
}

func printStats(stats *Stats) {
	fmt.Printf("Files scanned:           %d\n", stats.filesScanned)
	fmt.Printf("Total bytes:             %d\n", stats.totalBytes)
	fmt.Printf("Lines:                   %d\n", stats.lines)
	fmt.Printf("Lines changed:           %d\n", stats.linesChanged)
	fmt.Printf("Lines with digits left:  %d\n", stats.linesResidual)
	fmt.Printf("Stability checks OK:     %d\n", stats.stableOK)
	fmt.Printf("Stability checks FAIL:   %d\n", stats.stableFail)
	fmt.Printf("Residual outliers:       %d\n", stats.residualOutliers)
}
