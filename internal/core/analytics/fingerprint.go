package analytics

import (
	"encoding/binary"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/comitanigiacomo/kanso-habit-dashboard/internal/core/domain"
)

// Fingerprint hashes exactly the inputs Compute reads: the active habits in
// order, their cells for days 1..periodLength and the period length. Two
// inputs with the same fingerprint produce the same Statistics, which makes
// it a safe memoization key.
func Fingerprint(habits []domain.Habit, matrix Matrix, periodLength int) string {
	periodLength = max(periodLength, 0)
	d := xxhash.New()

	var buf [8]byte
	writeInt := func(n int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(n))
		_, _ = d.Write(buf[:])
	}

	writeInt(periodLength)
	for _, h := range domain.ActiveHabits(habits) {
		writeInt(h.ID)
		writeInt(len(h.Name))
		_, _ = d.WriteString(h.Name)

		bits := make([]byte, (periodLength+7)/8)
		for day := 1; day <= periodLength; day++ {
			if matrix.Done(h.ID, day) {
				bits[(day-1)/8] |= 1 << ((day - 1) % 8)
			}
		}
		_, _ = d.Write(bits)
	}

	return strconv.FormatUint(d.Sum64(), 16)
}

func FingerprintBoard(b *domain.Board) string {
	return Fingerprint(b.Habits.Habits(), b.Matrix, b.Period.Length)
}
