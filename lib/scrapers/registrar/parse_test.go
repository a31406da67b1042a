package registrar

import (
	"testing"

	"github.com/stretchr/testify/require"

	"coursecatalog-backend/lib/telemetry"
)

func TestParseUnits(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:scrapers/registrar")
	defer cleanup()

	three := 3
	one := 1

	testCases := []struct {
		text     string
		expected *int
	}{
		{text: "3", expected: &three},
		{text: "3 units", expected: &three},
		{text: "1 unit", expected: &one},
		{text: "Variable (1 - 3)", expected: nil},
		{text: "Variable", expected: nil},
		{text: "", expected: nil},
		{text: "TBA", expected: nil},
	}
	for _, test := range testCases {
		require.Equal(t, test.expected, parseUnits(test.text), "text: %q", test.text)
	}
}

func TestParseMeetingTime(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:scrapers/registrar")
	defer cleanup()

	testCases := []struct {
		text     string
		expected []int
	}{
		{text: "9:00 AM - 9:50 AM", expected: []int{540, 590}},
		{text: "12:00 PM - 12:50 PM", expected: []int{720, 770}},
		{text: "12:00 AM - 12:50 AM", expected: []int{0, 50}},
		{text: "1:15 PM - 4:15 PM", expected: []int{795, 975}},
		{text: "", expected: nil},
		{text: "TBA", expected: nil},
		{text: "9:00 AM", expected: nil},
	}
	for _, test := range testCases {
		require.Equal(t, test.expected, parseMeetingTime(test.text), "text: %q", test.text)
	}
}

func TestParseSeats(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:scrapers/registrar")
	defer cleanup()

	testCases := []struct {
		text     string
		expected []int
	}{
		{text: "25 / 30", expected: []int{25, 30}},
		{text: "10/20", expected: []int{10, 20}},
		{text: "1/2/3", expected: []int{1, 2, 3}},
		{text: "Waitlist (2)", expected: nil},
		{text: "Waitlist", expected: nil},
		{text: "", expected: nil},
		{text: "full", expected: nil},
	}
	for _, test := range testCases {
		require.Equal(t, test.expected, parseSeats(test.text), "text: %q", test.text)
	}
}

func TestParseDays(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:scrapers/registrar")
	defer cleanup()

	require.Equal(t, []string{"M", "W", "F"}, parseDays("M W F"))
	require.Equal(t, []string{"T", "R"}, parseDays("  T   R "))
	require.Nil(t, parseDays(""))
	require.Nil(t, parseDays("   "))
}

func TestParseInstructors(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:scrapers/registrar")
	defer cleanup()

	require.Equal(
		t,
		[]string{"Curie, Marie", "Pauling, Linus"},
		parseInstructors("Curie, Marie; Pauling, Linus"),
	)
	require.Equal(t, []string{"Hopper, Grace"}, parseInstructors("Hopper, Grace"))
	require.Equal(t, []string{}, parseInstructors(""))
}
