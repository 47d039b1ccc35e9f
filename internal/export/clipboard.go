package export

import "github.com/atotto/clipboard"

// ToClipboard places text on the system clipboard.
func ToClipboard(text string) error {
	return clipboard.WriteAll(text)
}
