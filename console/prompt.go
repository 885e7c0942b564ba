package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"restaurant-mapper/scraper/places"
)

// ErrNoInput is returned when input ends before every question is answered.
var ErrNoInput = errors.New("console: input closed")

// Prompter asks for search parameters line by line.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// AskQuery collects latitude, longitude, radius and limit. Radius and limit
// fall back to the defaults on an empty answer; invalid answers are asked again.
func (p *Prompter) AskQuery(defRadius, defLimit int) (places.Query, error) {
	lat, err := p.askFloat("Enter the latitude: ", -90, 90)
	if err != nil {
		return places.Query{}, err
	}
	lng, err := p.askFloat("Enter the longitude: ", -180, 180)
	if err != nil {
		return places.Query{}, err
	}
	radius, err := p.askInt(fmt.Sprintf("Enter the radius in meters [%d]: ", defRadius), defRadius, 1)
	if err != nil {
		return places.Query{}, err
	}
	limit, err := p.askInt(fmt.Sprintf("Enter the limit (60 locations max, -1 for no limit) [%d]: ", defLimit), defLimit, places.Unlimited)
	if err != nil {
		return places.Query{}, err
	}

	return places.Query{
		Location: places.FormatLocation(lat, lng),
		Radius:   radius,
		Limit:    limit,
	}, nil
}

func (p *Prompter) readLine(question string) (string, error) {
	fmt.Fprint(p.out, question)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("console: read: %w", err)
		}
		return "", ErrNoInput
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func (p *Prompter) askFloat(question string, min, max float64) (float64, error) {
	for {
		line, err := p.readLine(question)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(line, 64)
		if err == nil && v >= min && v <= max {
			return v, nil
		}
		fmt.Fprintf(p.out, "Please enter a number between %g and %g.\n", min, max)
	}
}

func (p *Prompter) askInt(question string, def, min int) (int, error) {
	for {
		line, err := p.readLine(question)
		if err != nil {
			return 0, err
		}
		if line == "" {
			return def, nil
		}
		v, err := strconv.Atoi(line)
		if err == nil && v >= min {
			return v, nil
		}
		fmt.Fprintf(p.out, "Please enter a whole number of at least %d.\n", min)
	}
}
