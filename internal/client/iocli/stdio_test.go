package iocli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStdio(t *testing.T) {
	var s IO = NewStdio()
	assert.NotNil(t, s)
}

func TestStdio_Output(t *testing.T) {
	var out bytes.Buffer
	s := New(strings.NewReader(""), &out)

	s.Println("Feed", 2)
	s.Printf("Found %d post(s)\n", 3)
	n, err := s.Write([]byte("rendered\n"))
	require.NoError(t, err)
	assert.Equal(t, 9, n)

	assert.Equal(t, "Feed 2\nFound 3 post(s)\nrendered\n", out.String())
}

// Несколько вопросов подряд при вводе через pipe
func TestStdio_ReadSequence(t *testing.T) {
	var out bytes.Buffer
	s := New(strings.NewReader("  Alice \nalice@example.com\nsecret1\nsecret1"), &out)

	name, err := s.ReadInput("Name: ")
	require.NoError(t, err)
	email, err := s.ReadInput("Email: ")
	require.NoError(t, err)
	pw, err := s.ReadPassword("Password: ")
	require.NoError(t, err)
	confirm, err := s.ReadPassword("Confirm password: ")
	require.NoError(t, err)

	assert.Equal(t, "Alice", name)
	assert.Equal(t, "alice@example.com", email)
	assert.Equal(t, "secret1", pw)
	assert.Equal(t, "secret1", confirm)
	assert.Equal(t, "Name: Email: Password: Confirm password: ", out.String())
}

func TestStdio_ReadInput_EOF(t *testing.T) {
	s := New(strings.NewReader(""), io.Discard)

	_, err := s.ReadInput("Text: ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestStdio_ReadInput_EmptyLine(t *testing.T) {
	s := New(strings.NewReader("\n"), io.Discard)

	got, err := s.ReadInput("Delete post p1? [y/N]: ")
	require.NoError(t, err)
	assert.Empty(t, got)
}
