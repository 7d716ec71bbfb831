package prose

import (
	"bufio"
	_ "embed"
	"strings"
)

// easy_words.txt is a compact familiar-word list, not the full Dale-Chall
// list, so everyday words such as "government" still count as complex.
//
//go:embed data/easy_words.txt
var easyWordData string

var easyWords = parseWordList(easyWordData)

func parseWordList(data string) map[string]struct{} {
	words := make(map[string]struct{})
	scanner := bufio.NewScanner(strings.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words[strings.ToLower(line)] = struct{}{}
	}
	return words
}

// IsEasyWord reports whether word is on the familiar-word list.
func IsEasyWord(word string) bool {
	_, ok := easyWords[strings.ToLower(word)]
	return ok
}
