package memory

import (
	"time"

	"github.com/goalzone-ng/goalzone-api/internal/domain/match"
	"github.com/goalzone-ng/goalzone-api/internal/domain/news"
	"github.com/goalzone-ng/goalzone-api/internal/domain/player"
	"github.com/goalzone-ng/goalzone-api/internal/domain/team"
)

// Seed identifiers referenced from tests.
const (
	TeamIDEnyimba     = "team-enyimba"
	TeamIDKanoPillars = "team-kano-pillars"
	TeamIDRangers     = "team-rangers"
	TeamIDRiversUtd   = "team-rivers-united"
)

func SeedTeams() []team.Team {
	return []team.Team{
		{
			ID:          TeamIDEnyimba,
			Name:        "Enyimba FC",
			ShortName:   "ENY",
			State:       team.StateAbia,
			FoundedYear: 1976,
			Stadium:     &team.Stadium{Name: "Enyimba International Stadium", Capacity: 25000, City: "Aba"},
			Colors:      &team.Colors{Primary: "blue", Secondary: "white"},
			Coach:       &team.Coach{Name: "Olanrewaju Yemi", Nationality: "Nigeria"},
			IsActive:    true,
		},
		{
			ID:          TeamIDKanoPillars,
			Name:        "Kano Pillars FC",
			ShortName:   "KNP",
			State:       team.StateKano,
			FoundedYear: 1990,
			Stadium:     &team.Stadium{Name: "Sani Abacha Stadium", Capacity: 16000, City: "Kano"},
			Colors:      &team.Colors{Primary: "red", Secondary: "white"},
			IsActive:    true,
		},
		{
			ID:          TeamIDRangers,
			Name:        "Rangers International FC",
			ShortName:   "RAN",
			State:       team.StateEnugu,
			FoundedYear: 1970,
			Stadium:     &team.Stadium{Name: "Nnamdi Azikiwe Stadium", Capacity: 22000, City: "Enugu"},
			IsActive:    true,
		},
		{
			ID:          TeamIDRiversUtd,
			Name:        "Rivers United FC",
			ShortName:   "RIV",
			State:       team.StateRivers,
			FoundedYear: 2016,
			Stadium:     &team.Stadium{Name: "Adokiye Amiesimaka Stadium", Capacity: 38000, City: "Port Harcourt"},
			IsActive:    true,
		},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{
			ID:           "player-eny-01",
			TeamID:       TeamIDEnyimba,
			FirstName:    "Chijioke",
			LastName:     "Okafor",
			JerseyNumber: 1,
			Position:     player.PositionGoalkeeper,
			Nationality:  "Nigeria",
			DateOfBirth:  time.Date(1996, time.April, 2, 0, 0, 0, 0, time.UTC),
			HeightCM:     191,
			WeightKG:     84,
			IsActive:     true,
		},
		{
			ID:           "player-eny-09",
			TeamID:       TeamIDEnyimba,
			FirstName:    "Emeka",
			LastName:     "Obiora",
			JerseyNumber: 9,
			Position:     player.PositionStriker,
			Nationality:  "Nigeria",
			DateOfBirth:  time.Date(1999, time.September, 14, 0, 0, 0, 0, time.UTC),
			HeightCM:     183,
			WeightKG:     78,
			MarketValue:  250000,
			IsActive:     true,
		},
		{
			ID:           "player-eny-10",
			TeamID:       TeamIDEnyimba,
			FirstName:    "Tunde",
			LastName:     "Adeyemi",
			JerseyNumber: 10,
			Position:     player.PositionAttackingMidfield,
			Nationality:  "Nigeria",
			DateOfBirth:  time.Date(2001, time.January, 23, 0, 0, 0, 0, time.UTC),
			IsActive:     true,
		},
		{
			ID:           "player-knp-10",
			TeamID:       TeamIDKanoPillars,
			FirstName:    "Sani",
			LastName:     "Abubakar",
			JerseyNumber: 10,
			Position:     player.PositionCentralMidfield,
			Nationality:  "Nigeria",
			DateOfBirth:  time.Date(1998, time.June, 30, 0, 0, 0, 0, time.UTC),
			IsActive:     true,
		},
	}
}

func SeedMatches() []match.Match {
	return []match.Match{
		{
			ID:         "match-0001",
			Season:     "2025/26",
			Matchday:   1,
			HomeTeamID: TeamIDEnyimba,
			AwayTeamID: TeamIDKanoPillars,
			KickoffAt:  time.Date(2025, time.September, 6, 16, 0, 0, 0, time.UTC),
			Venue:      "Enyimba International Stadium",
			Status:     match.StatusScheduled,
		},
		{
			ID:         "match-0002",
			Season:     "2025/26",
			Matchday:   1,
			HomeTeamID: TeamIDRangers,
			AwayTeamID: TeamIDRiversUtd,
			KickoffAt:  time.Date(2025, time.September, 7, 16, 0, 0, 0, time.UTC),
			Venue:      "Nnamdi Azikiwe Stadium",
			Status:     match.StatusScheduled,
		},
	}
}

func SeedArticles() []news.Article {
	publishedAt := time.Date(2025, time.August, 30, 9, 0, 0, 0, time.UTC)
	return []news.Article{
		{
			ID:          "article-0001",
			Title:       "Season preview: the title race resumes",
			Summary:     "Four clubs look capable of going the distance this year.",
			Body:        "The new league season kicks off this weekend with the reigning champions at home.",
			AuthorID:    "user-editor-1",
			Tags:        []string{"preview", "league"},
			Published:   true,
			PublishedAt: &publishedAt,
			CreatedAt:   publishedAt,
			UpdatedAt:   publishedAt,
		},
	}
}
