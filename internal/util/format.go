package util

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const jobCodePrefix = "DESAINJOB"

var idPrinter = message.NewPrinter(language.Indonesian)

// FormatRupiah 1234567 -> "Rp 1.234.567". nil, string kosong, nilai yang
// tidak bisa dibaca sebagai angka, atau nilai di luar rentang int64 menghasilkan "".
func FormatRupiah(value any) string {
	amount, ok := toFloat(value)
	if !ok {
		return ""
	}
	rounded := math.Round(amount)
	// di luar rentang int64 konversinya tidak terdefinisi
	if math.Abs(rounded) >= 1<<63 {
		return ""
	}
	n := int64(rounded)
	if n < 0 {
		return "-Rp " + idPrinter.Sprintf("%d", -n)
	}
	return "Rp " + idPrinter.Sprintf("%d", n)
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case *int64:
		if v == nil {
			return 0, false
		}
		return float64(*v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return v, true
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// FormatSalaryRange rentang gaji untuk tampilan lowongan.
func FormatSalaryRange(min, max *int64) string {
	switch {
	case min != nil && max != nil:
		if *min == *max {
			return FormatRupiah(*min)
		}
		return FormatRupiah(*min) + " - " + FormatRupiah(*max)
	case min != nil:
		return "Mulai " + FormatRupiah(*min)
	case max != nil:
		return "Hingga " + FormatRupiah(*max)
	default:
		return ""
	}
}

// GenerateJobCode "Software Engineer", 7 -> "DESAINJOB-SOF-0007".
// Judul tanpa huruf menghasilkan "".
func GenerateJobCode(title string, seq int) string {
	var letters []rune
	for _, r := range title {
		if unicode.IsLetter(r) {
			letters = append(letters, unicode.ToUpper(r))
			if len(letters) == 3 {
				break
			}
		}
	}
	if len(letters) == 0 {
		return ""
	}
	if seq < 0 {
		seq = 0
	}
	return fmt.Sprintf("%s-%s-%04d", jobCodePrefix, string(letters), seq)
}
