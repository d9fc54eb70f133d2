package cryptopals

import (
	"testing"
)

// englishSample is plain ASCII prose used as known plaintext.
const englishSample = `It was late in the autumn when the old lighthouse keeper finally agreed
to take on an assistant. For nearly forty years he had climbed the winding
stairs alone every evening, trimmed the wick, polished the great lens and
watched the ships pass safely along the rocky coast. The harbor master had
written to him many times, warning that a man of his age should not be left
on the island through another winter, but the keeper had always answered
that the light was his business and nobody else's.
The young woman who arrived on the supply boat was not what he had expected.
She carried a small canvas bag, a box of books and a notebook filled with
drawings of birds. She asked sensible questions, listened closely to the
answers and wrote everything down in a neat hand. Within a week she knew the
sound of every loose board in the tower and the temper of every gust that
came off the sea. When the first storm of the season struck, she stood beside
him at the top of the stairs and kept the lamp burning until dawn, and he
said nothing at all, which was the highest praise he knew how to give.
By the middle of the winter they had settled into an easy routine. In the
mornings she counted the birds that sheltered on the rocks, and in the
afternoons he taught her how to read the clouds and the color of the water.
In the spring the harbor master came out to see how they were getting on,
and he went home again without saying a word about retirement.
`

func TestScoreEnglishRejectsBinary(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
	}{
		{"nul", []byte("hello\x00world")},
		{"tab", []byte("hello\tworld")},
		{"carriage return", []byte("hello\rworld")},
		{"high bit", []byte("caf\xe9")},
		{"delete", []byte("abc\x7f")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScoreEnglish(tt.in); got != MaxScore {
				t.Errorf("ScoreEnglish(%q) = %d, want MaxScore", tt.in, got)
			}
		})
	}
}

func TestScoreEnglishPrefersEnglish(t *testing.T) {
	english := ScoreEnglish([]byte("the quick brown fox jumps over the lazy dog and then goes home"))
	noise := ScoreEnglish([]byte("zqxj zqxj kkvv qqqq zzzz xxxx jjjj vvvv kkkk qqqq zzzz xxxx jj"))
	symbols := ScoreEnglish([]byte("#$%&#$%&#$%&#$%&#$%&#$%&#$%&#$%&#$%&#$%&#$%&#$%&#$%&#$%&#$%&#$"))

	if english >= noise {
		t.Errorf("English score %d not better than rare-letter score %d", english, noise)
	}
	if english >= symbols {
		t.Errorf("English score %d not better than symbol score %d", english, symbols)
	}
	if english == MaxScore {
		t.Error("English text was rejected")
	}
}

func TestScoreEnglishCaseInsensitive(t *testing.T) {
	lower := ScoreEnglish([]byte("hello world\n"))
	upper := ScoreEnglish([]byte("HELLO WORLD\n"))
	if lower != upper {
		t.Errorf("ScoreEnglish() is case-sensitive: %d vs %d", lower, upper)
	}
}

func TestScoreEnglishDeterministic(t *testing.T) {
	buf := []byte(englishSample)
	first := ScoreEnglish(buf)
	for i := 0; i < 10; i++ {
		if got := ScoreEnglish(buf); got != first {
			t.Fatalf("ScoreEnglish() = %d on run %d, want %d", got, i, first)
		}
	}
}

func TestEnglishFreqTable(t *testing.T) {
	var sum uint64
	for _, f := range englishFreq {
		sum += f
	}
	if sum != 10000 {
		t.Errorf("frequency table sums to %d, want 10000", sum)
	}
}

func TestScoreEnglishEmpty(t *testing.T) {
	if got := ScoreEnglish(nil); got != 0 {
		t.Errorf("ScoreEnglish(nil) = %d, want 0", got)
	}
}
