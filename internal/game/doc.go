// Package game implements the blackjack rules engine.
//
// The main types are Hand, Participant and Game. A Game owns the seated
// participants (the dealer is always seated last) and plays one Round at a
// time against a freshly shuffled shoe.
//
// # Basic Usage
//
//	rng := randutil.New(42)
//	players := []*game.Participant{
//	    game.NewPlayer(1, game.DefaultRules().StartingCash, game.NewInteractivePolicy(prompter)),
//	}
//	g := game.NewGame(rng, game.DefaultRules(), players, game.WithAnnouncer(console))
//	err := g.Run(ctx)
//
// # Policies
//
// Participants differ only by the Policy they are given. DealerPolicy stands
// on the configured threshold and never bets; InteractivePolicy asks a
// Prompter for every bet and action and reprompts until the input is valid.
//
// # Deterministic Testing
//
// Inject a stacked shoe to control every card dealt:
//
//	g := game.NewGame(rng, rules, players, game.WithShoeSource(func() *deck.Shoe {
//	    return deck.NewStackedShoe(deck.MustParseCards("Ah 9c Kd 7s")...)
//	}))
package game
