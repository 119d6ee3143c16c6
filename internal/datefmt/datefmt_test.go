package datefmt

import (
	"strings"
	"testing"
	"time"

	"github.com/osa030/icudate/internal/boundary"
	"github.com/osa030/icudate/internal/icu"
	"github.com/stretchr/testify/suite"
)

type DateFmtTestSuite struct {
	suite.Suite
}

func TestDateFmtSuite(t *testing.T) {
	suite.Run(t, &DateFmtTestSuite{})
}

func (s *DateFmtTestSuite) SetupTest() {
	icu.SetDefaultZone(time.UTC)
}

func (s *DateFmtTestSuite) TearDownTest() {
	icu.SetDefaultZone(nil)
}

func (s *DateFmtTestSuite) TestNewYearInEnglish() {
	date, err := BuildInstant(2024, 0, 1)
	s.Require().NoError(err)

	got, err := DateToString(date, "en_US")
	s.Require().NoError(err)
	s.Equal("January 1, 2024", got)
}

func (s *DateFmtTestSuite) TestBuildInstantKeepsDate() {
	date, err := BuildInstant(1999, 11, 31)
	s.Require().NoError(err)

	t := date.Time(time.UTC)
	s.Equal(1999, t.Year())
	s.Equal(time.December, t.Month())
	s.Equal(31, t.Day())
}

func (s *DateFmtTestSuite) TestBuildInstantRollsOver() {
	date, err := BuildInstant(2023, 1, 29)
	s.Require().NoError(err)

	got, err := DateToString(date, "en_US")
	s.Require().NoError(err)
	s.Equal("March 1, 2023", got)
}

func (s *DateFmtTestSuite) TestValidDatesAlwaysFormat() {
	locales := []string{"en_US", "en_GB", "de_DE", "fr", "ja_JP", "ru", "ar_AE", "he_IL", "zh", "hi", "sw_KE", "",
		"ar_AE@calendar=islamic", "he_HE@calendar=hebrew", "bo_BO@calendar=buddhist", "zh@calendar=roc"}
	for year := 1600; year <= 2400; year += 37 {
		for month := 0; month < 12; month++ {
			for _, day := range []int{1, 15, 28} {
				date, err := BuildInstant(year, month, day)
				s.Require().NoError(err, "%d-%d-%d", year, month, day)
				for _, locale := range locales {
					got, err := DateToString(date, locale)
					s.Require().NoError(err, "%s %d-%d-%d", locale, year, month, day)
					s.NotEmpty(got, locale)
				}
			}
		}
	}
}

func (s *DateFmtTestSuite) TestCalendarReleasedOnFailure() {
	before := icu.LiveCalendars()

	_, err := BuildInstant(10_000_000, 0, 1)
	s.Require().Error(err)
	s.Equal(icu.U_ILLEGAL_ARGUMENT_ERROR, boundary.CodeOf(err))
	s.Equal(before, icu.LiveCalendars())

	_, err = BuildInstant(2024, 5, 5)
	s.Require().NoError(err)
	s.Equal(before, icu.LiveCalendars())
}

func (s *DateFmtTestSuite) TestFormatFailures() {
	date, err := BuildInstant(2024, 0, 1)
	s.Require().NoError(err)

	testCases := []struct {
		locale string
		code   icu.ErrorCode
	}{
		{locale: "ja_JP@calendar=japanese", code: icu.U_UNSUPPORTED_ERROR},
		{locale: "fa@calendar=persian", code: icu.U_UNSUPPORTED_ERROR},
		{locale: "en_US@calendar", code: icu.U_ILLEGAL_ARGUMENT_ERROR},
	}
	for _, tc := range testCases {
		s.Run(tc.locale, func() {
			got, err := DateToString(date, tc.locale)
			s.Require().Error(err)
			s.Empty(got)
			s.Equal(tc.code, boundary.CodeOf(err))
			s.True(strings.HasPrefix(err.Error(), "ICU Error: "), err.Error())
		})
	}
}

func (s *DateFmtTestSuite) TestFormatInstantIsTerminated() {
	date, err := BuildInstant(2024, 0, 1)
	s.Require().NoError(err)

	formatted, err := FormatInstant(date, "en_US")
	s.Require().NoError(err)
	s.Len(formatted, len("January 1, 2024")+1)
	s.Equal(uint16(0), formatted[len(formatted)-1])
}

func (s *DateFmtTestSuite) TestInvalidLocaleIsDeterministic() {
	date, err := BuildInstant(2024, 0, 1)
	s.Require().NoError(err)

	for _, locale := range []string{"xx_YY", "!!", "he_HE"} {
		first, firstErr := DateToString(date, locale)
		second, secondErr := DateToString(date, locale)
		s.Equal(first, second, locale)
		s.Equal(boundary.CodeOf(firstErr), boundary.CodeOf(secondErr), locale)
	}
}
