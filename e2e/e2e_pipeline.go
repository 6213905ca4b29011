//go:build ignore

// e2e_pipeline exercises every normalizer package in a single run and
// writes structured results to data/e2e_pipeline.log.
// Run from the project root:
//
//	go run e2e/e2e_pipeline.go
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/raditotev/bg-text-normalizer/abbrev"
	"github.com/raditotev/bg-text-normalizer/clock"
	"github.com/raditotev/bg-text-normalizer/currency"
	"github.com/raditotev/bg-text-normalizer/dates"
	"github.com/raditotev/bg-text-normalizer/normalizer"
	"github.com/raditotev/bg-text-normalizer/numwords"
	"github.com/raditotev/bg-text-normalizer/phone"
	"github.com/raditotev/bg-text-normalizer/roman"
)

// ---------- constants ----------

const (
	logPath      = "data/e2e_pipeline.log"
	moduleCount  = 8
	maxDetailLen = 200
	concWorkers  = 8
	concIter     = 100
	separator    = "=========================================================="
	suiteCount   = 10
)

// ---------- test corpus ----------

const textInvoice = `Фактура №2041 от 15.02.2026 г. на стойност 1500.50 лв. с ДДС 20%.`

const textAppointment = `Среща на 3 март в 14:30 ч. на бул. Витоша №10, гр. София.`

const textContact = `Тел: +359 888 123 456 или 02 987 6543.`

const textHistory = `През XXI век, на 3-ти март 2018 г., честваме 140 години от 1878 г.`

const textMixed = `Цените са €25, $30 и £15, отстъпка 12.5%, площ 120 кв.м.`

// ---------- types ----------

type testResult struct {
	name     string
	module   string
	passed   bool
	duration time.Duration
	detail   string
}

type moduleReport struct {
	name     string
	tests    int
	passed   int
	failed   int
	duration time.Duration
}

// ---------- helpers ----------

func pass(module, name string, start time.Time) testResult {
	return testResult{name: name, module: module, passed: true, duration: time.Since(start)}
}

func fail(module, name, detail string, start time.Time) testResult {
	return testResult{name: name, module: module, passed: false, duration: time.Since(start), detail: truncate(detail, maxDetailLen)}
}

func truncate(s string, maxRunes int) string {
	n := 0
	for i := range s {
		n++
		if n > maxRunes {
			return s[:i] + "..."
		}
	}
	return s
}

func safeRun(module, name string, fn func() testResult) (r testResult) {
	defer func() {
		if p := recover(); p != nil {
			r = fail(module, name, fmt.Sprintf("PANIC: %v", p), time.Now())
		}
	}()
	return fn()
}

func hasDigit(s string) bool {
	return strings.ContainsFunc(s, unicode.IsDigit)
}

func hasCyrillicRune(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Cyrillic, r) {
			return true
		}
	}
	return false
}

// ---------- test suites ----------

func testNumwords() []testResult {
	const mod = "numwords"
	var results []testResult

	results = append(results, safeRun(mod, "cardinal_basic", func() testResult {
		start := time.Now()
		if out := numwords.Cardinal(1500, numwords.Masculine); out != "хиляда и петстотин" {
			return fail(mod, "cardinal_basic", fmt.Sprintf("got %q", out), start)
		}
		return pass(mod, "cardinal_basic", start)
	}))

	results = append(results, safeRun(mod, "cardinal_gender", func() testResult {
		start := time.Now()
		m := numwords.Cardinal(2, numwords.Masculine)
		f := numwords.Cardinal(2, numwords.Feminine)
		if m == f {
			return fail(mod, "cardinal_gender", fmt.Sprintf("masculine %q == feminine %q", m, f), start)
		}
		return pass(mod, "cardinal_gender", start)
	}))

	results = append(results, safeRun(mod, "ordinal_year", func() testResult {
		start := time.Now()
		if out := numwords.Ordinal(2026, numwords.Feminine); out != "две хиляди двадесет и шеста" {
			return fail(mod, "ordinal_year", fmt.Sprintf("got %q", out), start)
		}
		return pass(mod, "ordinal_year", start)
	}))

	results = append(results, safeRun(mod, "decimal_string", func() testResult {
		start := time.Now()
		if out := numwords.Decimal("3.14", numwords.Neuter); out != "три цяло и четиринадесет стотни" {
			return fail(mod, "decimal_string", fmt.Sprintf("got %q", out), start)
		}
		return pass(mod, "decimal_string", start)
	}))

	results = append(results, safeRun(mod, "cardinal_total", func() testResult {
		start := time.Now()
		for _, n := range []int64{0, -1, 1, 19, 20, 100, 999, 1000, 1000000, 999999999999} {
			for _, g := range []numwords.Gender{numwords.Masculine, numwords.Feminine, numwords.Neuter} {
				if numwords.Cardinal(n, g) == "" {
					return fail(mod, "cardinal_total", fmt.Sprintf("empty output for %d", n), start)
				}
			}
		}
		return pass(mod, "cardinal_total", start)
	}))

	return results
}

func testDates() []testResult {
	const mod = "dates"
	var results []testResult

	results = append(results, safeRun(mod, "date_basic", func() testResult {
		start := time.Now()
		if out := dates.Date(15, 2); out != "петнадесети февруари" {
			return fail(mod, "date_basic", fmt.Sprintf("got %q", out), start)
		}
		return pass(mod, "date_basic", start)
	}))

	results = append(results, safeRun(mod, "date_invalid", func() testResult {
		start := time.Now()
		if out := dates.Date(35, 13); out != "" {
			return fail(mod, "date_invalid", fmt.Sprintf("got %q, want empty", out), start)
		}
		return pass(mod, "date_invalid", start)
	}))

	results = append(results, safeRun(mod, "year_ordinal", func() testResult {
		start := time.Now()
		if out := dates.Year(1878); out != "хиляда осемстотин седемдесет и осма" {
			return fail(mod, "year_ordinal", fmt.Sprintf("got %q", out), start)
		}
		return pass(mod, "year_ordinal", start)
	}))

	results = append(results, safeRun(mod, "month_roundtrip", func() testResult {
		start := time.Now()
		for m := 1; m <= 12; m++ {
			name := dates.MonthName(m)
			if name == "" {
				return fail(mod, "month_roundtrip", fmt.Sprintf("no name for month %d", m), start)
			}
			if got := dates.MonthNumber(name); got != m {
				return fail(mod, "month_roundtrip", fmt.Sprintf("MonthNumber(%q)=%d, want %d", name, got, m), start)
			}
		}
		return pass(mod, "month_roundtrip", start)
	}))

	return results
}

func testClock() []testResult {
	const mod = "clock"
	var results []testResult

	results = append(results, safeRun(mod, "time_basic", func() testResult {
		start := time.Now()
		if out := clock.Time(14, 30, true); out != "четиринадесет и тридесет часа" {
			return fail(mod, "time_basic", fmt.Sprintf("got %q", out), start)
		}
		return pass(mod, "time_basic", start)
	}))

	results = append(results, safeRun(mod, "time_total", func() testResult {
		start := time.Now()
		out := clock.Time(99, 99, false)
		if out == "" || hasDigit(out) {
			return fail(mod, "time_total", fmt.Sprintf("got %q", out), start)
		}
		return pass(mod, "time_total", start)
	}))

	return results
}

func testCurrency() []testResult {
	const mod = "currency"
	var results []testResult

	results = append(results, safeRun(mod, "bgn_fraction", func() testResult {
		start := time.Now()
		out := currency.Normalize("1500.50", "BGN")
		if out != "хиляда и петстотин лева и петдесет стотинки" {
			return fail(mod, "bgn_fraction", fmt.Sprintf("got %q", out), start)
		}
		return pass(mod, "bgn_fraction", start)
	}))

	results = append(results, safeRun(mod, "all_codes", func() testResult {
		start := time.Now()
		for _, code := range []string{"BGN", "EUR", "USD", "GBP"} {
			out := currency.Normalize("2.01", code)
			if out == "2.01" || hasDigit(out) {
				return fail(mod, "all_codes", fmt.Sprintf("%s: got %q", code, out), start)
			}
		}
		return pass(mod, "all_codes", start)
	}))

	results = append(results, safeRun(mod, "garbage_unchanged", func() testResult {
		start := time.Now()
		if out := currency.Normalize("abc", "BGN"); out != "abc" {
			return fail(mod, "garbage_unchanged", fmt.Sprintf("got %q", out), start)
		}
		return pass(mod, "garbage_unchanged", start)
	}))

	return results
}

func testPhone() []testResult {
	const mod = "phone"
	var results []testResult

	results = append(results, safeRun(mod, "international", func() testResult {
		start := time.Now()
		out := phone.Normalize("+359 888 123 456")
		if !strings.HasPrefix(out, "плюс три пет девет") || hasDigit(out) {
			return fail(mod, "international", fmt.Sprintf("got %q", out), start)
		}
		return pass(mod, "international", start)
	}))

	results = append(results, safeRun(mod, "domestic", func() testResult {
		start := time.Now()
		out := phone.Normalize("0888 123 456")
		if !strings.HasPrefix(out, "нула") || hasDigit(out) {
			return fail(mod, "domestic", fmt.Sprintf("got %q", out), start)
		}
		return pass(mod, "domestic", start)
	}))

	return results
}

func testRoman() []testResult {
	const mod = "roman"
	var results []testResult

	results = append(results, safeRun(mod, "parse_subtractive", func() testResult {
		start := time.Now()
		v, err := roman.Parse("XLII")
		if err != nil || v != 42 {
			return fail(mod, "parse_subtractive", fmt.Sprintf("got %d, %v", v, err), start)
		}
		return pass(mod, "parse_subtractive", start)
	}))

	results = append(results, safeRun(mod, "parse_invalid", func() testResult {
		start := time.Now()
		if _, err := roman.Parse("ABC"); err == nil {
			return fail(mod, "parse_invalid", "no error for ABC", start)
		}
		return pass(mod, "parse_invalid", start)
	}))

	return results
}

func testAbbrev() []testResult {
	const mod = "abbrev"
	var results []testResult

	results = append(results, safeRun(mod, "expand_general", func() testResult {
		start := time.Now()
		out := abbrev.Expand("гр. София")
		if !strings.Contains(out, "град") {
			return fail(mod, "expand_general", fmt.Sprintf("got %q", out), start)
		}
		return pass(mod, "expand_general", start)
	}))

	results = append(results, safeRun(mod, "expand_unit", func() testResult {
		start := time.Now()
		out := abbrev.Expand("5 км")
		if !strings.Contains(out, "километра") {
			return fail(mod, "expand_unit", fmt.Sprintf("got %q", out), start)
		}
		return pass(mod, "expand_unit", start)
	}))

	results = append(results, safeRun(mod, "lookup", func() testResult {
		start := time.Now()
		if _, ok := abbrev.Lookup("ддс"); !ok {
			return fail(mod, "lookup", "ддс not found", start)
		}
		return pass(mod, "lookup", start)
	}))

	return results
}

func testNormalizer() []testResult {
	const mod = "normalizer"
	var results []testResult

	texts := map[string]string{
		"invoice":     textInvoice,
		"appointment": textAppointment,
		"contact":     textContact,
		"history":     textHistory,
		"mixed":       textMixed,
	}

	for name, text := range texts {
		results = append(results, safeRun(mod, "no_digits_"+name, func() testResult {
			start := time.Now()
			out := normalizer.Normalize(text)
			if out == "" {
				return fail(mod, "no_digits_"+name, "empty output", start)
			}
			if hasDigit(out) {
				return fail(mod, "no_digits_"+name, fmt.Sprintf("digits remain: %s", truncate(out, 80)), start)
			}
			if !hasCyrillicRune(out) {
				return fail(mod, "no_digits_"+name, "no Cyrillic in output", start)
			}
			return pass(mod, "no_digits_"+name, start)
		}))
	}

	results = append(results, safeRun(mod, "empty_input", func() testResult {
		start := time.Now()
		if out := normalizer.Normalize(""); out != "" {
			return fail(mod, "empty_input", fmt.Sprintf("got %q", out), start)
		}
		return pass(mod, "empty_input", start)
	}))

	return results
}

// testPipeline checks that the full pipeline is stable: normalizing its own
// output a second time must change nothing once all digits are gone.
func testPipeline() []testResult {
	const mod = "pipeline"
	var results []testResult

	for _, text := range []string{textInvoice, textAppointment, textContact, textHistory, textMixed} {
		results = append(results, safeRun(mod, "stable", func() testResult {
			start := time.Now()
			once := normalizer.Normalize(text)
			if hasDigit(once) {
				return pass(mod, "stable", start)
			}
			twice := normalizer.Normalize(once)
			if twice != once {
				return fail(mod, "stable",
					fmt.Sprintf("once:  %s\ntwice: %s", truncate(once, 80), truncate(twice, 80)), start)
			}
			return pass(mod, "stable", start)
		}))
	}

	return results
}

// testConcurrent hammers the package API from multiple goroutines; the whole
// library is read-only after init and must stay race free.
func testConcurrent() []testResult {
	const mod = "concurrent"

	return []testResult{safeRun(mod, "parallel_normalize", func() testResult {
		start := time.Now()

		var wg sync.WaitGroup
		errCh := make(chan string, concWorkers)

		want := normalizer.Normalize(textInvoice)
		for w := 0; w < concWorkers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < concIter; i++ {
					if got := normalizer.Normalize(textInvoice); got != want {
						select {
						case errCh <- fmt.Sprintf("got %s", truncate(got, 80)):
						default:
						}
						return
					}
				}
			}()
		}
		wg.Wait()
		close(errCh)

		if detail, ok := <-errCh; ok {
			return fail(mod, "parallel_normalize", detail, start)
		}
		return pass(mod, "parallel_normalize", start)
	})}
}

// ---------- orchestration ----------

func runAllSuites() []testResult {
	suites := []func() []testResult{
		testNumwords,
		testDates,
		testClock,
		testCurrency,
		testPhone,
		testRoman,
		testAbbrev,
		testNormalizer,
		testPipeline,
		testConcurrent,
	}

	var all []testResult
	for _, suite := range suites {
		all = append(all, suite()...)
	}
	return all
}

func buildReports(results []testResult) []moduleReport {
	order := make(map[string]int)
	var reports []moduleReport

	for _, r := range results {
		idx, exists := order[r.module]
		if !exists {
			idx = len(reports)
			order[r.module] = idx
			reports = append(reports, moduleReport{name: r.module})
		}
		reports[idx].tests++
		reports[idx].duration += r.duration
		if r.passed {
			reports[idx].passed++
		} else {
			reports[idx].failed++
		}
	}
	return reports
}

func writeLog(path string, results []testResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)

	now := time.Now().UTC().Format(time.RFC3339)
	goVer := runtime.Version()
	platform := runtime.GOOS + "/" + runtime.GOARCH

	fmt.Fprintln(bw, separator)
	fmt.Fprintln(bw, "  bg-text-normalizer E2E Pipeline Test")
	fmt.Fprintf(bw, "  Timestamp: %s\n", now)
	fmt.Fprintf(bw, "  Go: %s  OS: %s\n", goVer, platform)
	fmt.Fprintf(bw, "  Modules: %d\n", moduleCount)
	fmt.Fprintln(bw, separator)
	fmt.Fprintln(bw)

	reports := buildReports(results)
	var totalDuration time.Duration
	for _, rep := range reports {
		totalDuration += rep.duration
	}

	// Per-module sections.
	for _, rep := range reports {
		fmt.Fprintf(bw, "[%s] %d tests | %d passed | %d failed | %s\n",
			rep.name, rep.tests, rep.passed, rep.failed, rep.duration.Round(time.Microsecond))
		for _, r := range results {
			if r.module != rep.name {
				continue
			}
			status := "PASS"
			if !r.passed {
				status = "FAIL"
			}
			fmt.Fprintf(bw, "  %-6s %-45s %s\n", status, r.name, r.duration.Round(time.Microsecond))
		}
		fmt.Fprintln(bw)
	}

	// Failures section.
	var failures []testResult
	for _, r := range results {
		if !r.passed {
			failures = append(failures, r)
		}
	}
	if len(failures) > 0 {
		fmt.Fprintln(bw, "--- FAILURES ---")
		for _, r := range failures {
			fmt.Fprintf(bw, "  FAIL  [%s] %-40s %s\n", r.module, r.name, r.duration.Round(time.Microsecond))
			if r.detail != "" {
				for line := range strings.SplitSeq(r.detail, "\n") {
					fmt.Fprintf(bw, "        %s\n", line)
				}
			}
		}
		fmt.Fprintln(bw)
	}

	// Summary.
	totalTests := len(results)
	totalPassed := 0
	totalFailed := 0
	for _, r := range results {
		if r.passed {
			totalPassed++
		} else {
			totalFailed++
		}
	}

	fmt.Fprintln(bw, separator)
	fmt.Fprintf(bw, "  SUMMARY: %d tests | %d passed | %d failed | %s\n",
		totalTests, totalPassed, totalFailed, totalDuration.Round(time.Microsecond))
	fmt.Fprintln(bw, separator)

	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printSummary(results []testResult) {
	reports := buildReports(results)
	totalPassed := 0
	totalFailed := 0
	var totalDuration time.Duration

	for _, rep := range reports {
		totalPassed += rep.passed
		totalFailed += rep.failed
		totalDuration += rep.duration

		status := "OK"
		if rep.failed > 0 {
			status = "FAIL"
		}
		log.Printf("  %-12s %d/%d %s", rep.name, rep.passed, rep.tests, status)
	}

	log.Printf("")
	log.Printf("  %d tests | %d passed | %d failed | %s",
		len(results), totalPassed, totalFailed, totalDuration.Round(time.Microsecond))

	for _, r := range results {
		if !r.passed {
			log.Printf("  FAIL [%s] %s: %s", r.module, r.name, r.detail)
		}
	}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("[e2e] ")

	log.Printf("starting E2E pipeline test (%d modules, %d suites)", moduleCount, suiteCount)
	totalStart := time.Now()

	results := runAllSuites()

	log.Printf("completed in %s", time.Since(totalStart).Round(time.Microsecond))
	log.Printf("")

	printSummary(results)

	if err := writeLog(logPath, results); err != nil {
		log.Fatalf("cannot write log: %v", err)
	}
	log.Printf("log written to %s", logPath)

	for _, r := range results {
		if !r.passed {
			os.Exit(1)
		}
	}
}
