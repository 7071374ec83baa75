package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/seojun/meeplehub/internal/app/models"
	appRepos "github.com/seojun/meeplehub/internal/app/repositories"
)

// defaultCatalog is the starter board game catalog. Identifiers are
// assigned here rather than by the database so they stay stable across
// environments.
var defaultCatalog = []*appModels.BoardGame{
	{
		ID: 1, NameKo: "카탄", NameEn: "Catan",
		Category: "strategy", CategoryDescription: "Resource trading and settlement building",
		MinPlayers: 3, MaxPlayers: 4, PlayTimeMin: 90, Difficulty: 2.3,
		Designer: "Klaus Teuber",
	},
	{
		ID: 2, NameKo: "스플렌더", NameEn: "Splendor",
		Category: "strategy", CategoryDescription: "Engine building with gem tokens",
		MinPlayers: 2, MaxPlayers: 4, PlayTimeMin: 30, Difficulty: 1.8,
		Designer: "Marc André",
	},
	{
		ID: 3, NameKo: "아줄", NameEn: "Azul",
		Category: "abstract", CategoryDescription: "Tile drafting and pattern building",
		MinPlayers: 2, MaxPlayers: 4, PlayTimeMin: 40, Difficulty: 1.8,
		Designer: "Michael Kiesling",
	},
	{
		ID: 4, NameKo: "윙스팬", NameEn: "Wingspan",
		Category: "strategy", CategoryDescription: "Card driven engine building about birds",
		MinPlayers: 1, MaxPlayers: 5, PlayTimeMin: 70, Difficulty: 2.4,
		Designer: "Elizabeth Hargrave",
	},
	{
		ID: 5, NameKo: "딕싯", NameEn: "Dixit",
		Category: "party", CategoryDescription: "Storytelling with surreal artwork",
		MinPlayers: 3, MaxPlayers: 6, PlayTimeMin: 30, Difficulty: 1.2,
		Designer: "Jean-Louis Roubira",
	},
	{
		ID: 6, NameKo: "코드네임", NameEn: "Codenames",
		Category: "party", CategoryDescription: "Word association in two teams",
		MinPlayers: 2, MaxPlayers: 8, PlayTimeMin: 15, Difficulty: 1.3,
		Designer: "Vlaada Chvátil",
	},
	{
		ID: 7, NameKo: "테라포밍 마스", NameEn: "Terraforming Mars",
		Category: "strategy", CategoryDescription: "Heavy engine building about terraforming",
		MinPlayers: 1, MaxPlayers: 5, PlayTimeMin: 120, Difficulty: 3.3,
		Designer: "Jacob Fryxelius",
	},
	{
		ID: 8, NameKo: "팬데믹", NameEn: "Pandemic",
		Category: "cooperative", CategoryDescription: "Cooperative disease control",
		MinPlayers: 2, MaxPlayers: 4, PlayTimeMin: 45, Difficulty: 2.4,
		Designer: "Matt Leacock",
	},
	{
		ID: 9, NameKo: "루미큐브", NameEn: "Rummikub",
		Category: "family", CategoryDescription: "Classic tile rummy",
		MinPlayers: 2, MaxPlayers: 4, PlayTimeMin: 60, Difficulty: 1.7,
		Designer: "Ephraim Hertzano",
	},
	{
		ID: 10, NameKo: "뱅", NameEn: "Bang!",
		Category: "party", CategoryDescription: "Hidden role western shootout",
		MinPlayers: 4, MaxPlayers: 7, PlayTimeMin: 30, Difficulty: 1.6,
		Designer: "Emiliano Sciarra",
	},
}

// CreateDefaultData seeds the board game catalog when the table is empty.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	gameRepo := appRepos.NewBoardGameRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default board game catalog...")

	count, err := gameRepo.Count(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error counting board games")
		return err
	}
	if count > 0 {
		lgr.Info().Int("count", count).Msg("Board game catalog already populated, skipping seed")
		return nil
	}

	var finalErr error
	for _, game := range defaultCatalog {
		if err := gameRepo.Insert(ctx, game); err != nil {
			lgr.Error().Err(err).Int64("gameID", game.ID).Str("name", game.NameEn).Msg("Error seeding board game")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Int("count", len(defaultCatalog)).Msg("Default board game catalog created")
	}
	return finalErr
}
