// Package quiz parses markdown quiz exercises: the question is the
// first level-1 heading plus the paragraphs that follow it, the answer
// is the first fenced code block.
package quiz

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Quiz is a parsed markdown quiz.
type Quiz struct {
	Question string
	Answer   string
}

// Parse extracts the question and answer from markdown source.
func Parse(source []byte) (*Quiz, error) {
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var question strings.Builder
	var answer string
	inQuestion := false

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			if node.Level == 1 {
				inQuestion = true
				question.WriteString(string(node.Text(source)))
				question.WriteString("\n")
			}
		case *ast.Paragraph:
			if inQuestion {
				question.WriteString(string(node.Text(source)))
				question.WriteString("\n")
			}
		case *ast.FencedCodeBlock:
			answer = blockText(node, source)
		case *ast.CodeBlock:
			answer = blockText(node, source)
		}
		if answer != "" {
			break
		}
	}

	q := strings.TrimSpace(question.String())
	a := strings.TrimSpace(answer)
	if q == "" || a == "" {
		return nil, errors.New("quiz needs a level-1 heading question and a code block answer")
	}
	return &Quiz{Question: q, Answer: a}, nil
}

func blockText(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}
	return buf.String()
}

// Grade compares a student answer against the expected one, ignoring
// surrounding whitespace.
func (q *Quiz) Grade(answer string) bool {
	return strings.TrimSpace(answer) == q.Answer
}

// Ask writes the prompt, reads a single line from in and grades it.
func (q *Quiz) Ask(in io.Reader, out io.Writer) (bool, error) {
	if _, err := fmt.Fprint(out, "Your answer: "); err != nil {
		return false, err
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	ok := q.Grade(line)
	if ok {
		fmt.Fprintln(out, "Correct!")
	} else {
		fmt.Fprintf(out, "Incorrect. The correct answer was: %s\n", q.Answer)
	}
	return ok, nil
}
