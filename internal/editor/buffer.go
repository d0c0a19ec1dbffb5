package editor

// Buffer holds the full logical line, including a fixed prompt prefix that
// can never be edited.
type Buffer struct {
	content []rune
	prompt  int
}

// NewBuffer returns a Buffer containing only the provided prompt.
func NewBuffer(prompt string) *Buffer {
	content := []rune(prompt)
	return &Buffer{content: content, prompt: len(content)}
}

// Len returns the length of the line, prompt included.
func (b *Buffer) Len() int {
	return len(b.content)
}

// PromptLen returns the length of the prompt prefix.
func (b *Buffer) PromptLen() int {
	return b.prompt
}

// Insert inserts r at offset i.
func (b *Buffer) Insert(i int, r rune) error {
	if i < b.prompt || i > len(b.content) {
		return &BoundsError{Op: "insert", Index: i, Lower: b.prompt, Upper: len(b.content)}
	}
	b.content = append(b.content, 0)
	copy(b.content[i+1:], b.content[i:])
	b.content[i] = r
	return nil
}

// Remove removes the character at offset i.
func (b *Buffer) Remove(i int) error {
	if i < b.prompt || i >= len(b.content) {
		return &BoundsError{Op: "remove", Index: i, Lower: b.prompt, Upper: len(b.content) - 1}
	}
	return b.RemoveRange(i, i+1)
}

// RemoveRange removes the characters in [i, j).
func (b *Buffer) RemoveRange(i, j int) error {
	if i < b.prompt || i > j {
		return &BoundsError{Op: "remove", Index: i, Lower: b.prompt, Upper: j}
	}
	if j > len(b.content) {
		return &BoundsError{Op: "remove", Index: j, Lower: i, Upper: len(b.content)}
	}
	b.content = append(b.content[:i], b.content[j:]...)
	return nil
}

// Slice returns the characters in [i, j).
func (b *Buffer) Slice(i, j int) string {
	return string(b.content[i:j])
}

// WordStart returns the offset a backward word deletion from i stops at:
// trailing spaces are skipped, then everything up to the previous space or
// the end of the prompt.
func (b *Buffer) WordStart(i int) int {
	for i > b.prompt && b.content[i-1] == ' ' {
		i--
	}
	for i > b.prompt && b.content[i-1] != ' ' {
		i--
	}
	return i
}

// Text returns the line without its prompt.
func (b *Buffer) Text() string {
	return string(b.content[b.prompt:])
}

// String returns the full line, prompt included.
func (b *Buffer) String() string {
	return string(b.content)
}
