package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/2beens/fitlog/internal/exercises"

	log "github.com/sirupsen/logrus"
)

const (
	choiceCardio   = 1
	choiceStrength = 2
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=console_test

type exerciseAdder interface {
	Add(ex exercises.Exercise)
}

// Console runs the interactive prompt loop, reading exercises from in
// and handing each completed one to the adder.
type Console struct {
	in    *bufio.Reader
	out   io.Writer
	adder exerciseAdder
}

func New(in io.Reader, out io.Writer, adder exerciseAdder) *Console {
	return &Console{
		in:    bufio.NewReader(in),
		out:   out,
		adder: adder,
	}
}

// Run keeps asking for exercises until the user declines to add another one,
// or the input ends. It returns the number of exercises added.
func (c *Console) Run() (int, error) {
	added := 0
	for {
		c.print("Select exercise type:\n1. Cardio\n2. Strength Training\n")
		choiceToken, err := c.readToken()
		if err != nil {
			return added, endOfInput(err)
		}

		var ex exercises.Exercise
		switch parseInt(choiceToken) {
		case choiceCardio:
			ex, err = c.readCardio()
		case choiceStrength:
			ex, err = c.readStrength()
		default:
			log.Debugf("invalid exercise type choice: %q", choiceToken)
			c.print("Invalid choice.\n")
			continue
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				log.Warnln("input ended before the exercise was complete, discarding it")
			}
			return added, endOfInput(err)
		}

		c.adder.Add(ex)
		added++

		c.print("Do you want to add another exercise? (y/n): ")
		answer, err := c.readToken()
		if err != nil {
			return added, endOfInput(err)
		}
		if answer[0] != 'y' && answer[0] != 'Y' {
			return added, nil
		}
	}
}

func (c *Console) readCardio() (exercises.Exercise, error) {
	c.print("Enter cardio exercise name: ")
	name, err := c.readName()
	if err != nil {
		return exercises.Exercise{}, err
	}

	c.print("Enter duration (in minutes): ")
	minutes, err := c.readInt()
	if err != nil {
		return exercises.Exercise{}, err
	}

	date, err := c.readDate()
	if err != nil {
		return exercises.Exercise{}, err
	}

	return exercises.NewCardio(name, minutes, date), nil
}

func (c *Console) readStrength() (exercises.Exercise, error) {
	c.print("Enter strength training exercise name: ")
	name, err := c.readName()
	if err != nil {
		return exercises.Exercise{}, err
	}

	c.print("Enter number of sets: ")
	sets, err := c.readInt()
	if err != nil {
		return exercises.Exercise{}, err
	}

	c.print("Enter number of reps: ")
	reps, err := c.readInt()
	if err != nil {
		return exercises.Exercise{}, err
	}

	c.print("Enter weight (in lbs): ")
	weight, err := c.readInt()
	if err != nil {
		return exercises.Exercise{}, err
	}

	date, err := c.readDate()
	if err != nil {
		return exercises.Exercise{}, err
	}

	return exercises.NewStrength(name, sets, reps, weight, date), nil
}

func (c *Console) readDate() (string, error) {
	c.print("Enter date of exercise (YYYY-MM-DD): ")
	return c.readToken()
}

// readName drops the single character left after the previous token (usually the newline)
// and returns the rest of the line.
func (c *Console) readName() (string, error) {
	if _, _, err := c.in.ReadRune(); err != nil {
		return "", err
	}
	line, err := c.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) readInt() (int, error) {
	token, err := c.readToken()
	if err != nil {
		return 0, err
	}
	return parseInt(token), nil
}

// readToken skips leading whitespace and reads up to the next whitespace character,
// which is left unread.
func (c *Console) readToken() (string, error) {
	var sb strings.Builder
	for {
		r, _, err := c.in.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) && sb.Len() > 0 {
				return sb.String(), nil
			}
			return "", err
		}
		if unicode.IsSpace(r) {
			if sb.Len() == 0 {
				continue
			}
			if err := c.in.UnreadRune(); err != nil {
				return "", err
			}
			return sb.String(), nil
		}
		sb.WriteRune(r)
	}
}

func (c *Console) print(s string) {
	if _, err := fmt.Fprint(c.out, s); err != nil {
		log.Errorf("write prompt: %s", err)
	}
}

// parseInt coerces a token to a number; anything non-numeric becomes 0.
func parseInt(token string) int {
	n, err := strconv.Atoi(token)
	if err != nil {
		log.Debugf("not a number %q, using 0", token)
		return 0
	}
	return n
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return fmt.Errorf("read input: %w", err)
}
