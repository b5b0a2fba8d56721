package scripture

import "fmt"

func chapterKey(book, chapter int) string {
	return fmt.Sprintf("selah:chapter:%d:%d", book, chapter)
}
