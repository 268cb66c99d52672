package controller

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Policy supplies the answers a bot gives to each prompt
type Policy interface {
	Name() string
	IsReady() bool
	Action() string
	CardPlayIndices() []int
	CardGiveawayIndex() int
	CardGiveawayPlayerIndex() int
	JokerTargetIndex() int
	WantsToMulligan() string
	MulliganHandIndex() int
	MulliganFaceUpIndex() int
	PreferredStartDirection() string
	VoteForWinnerIndex() int
}

// BotController is a Controller driven by a Policy
type BotController struct {
	policy    Policy
	delay     time.Duration
	logger    logrus.FieldLogger
	responses map[string]func() interface{}
}

var _ Controller = (*BotController)(nil)

// NewBotController returns a controller that answers with the policy
// delay is slept before every request so a person can follow along
func NewBotController(policy Policy, delay time.Duration, logger logrus.FieldLogger) *BotController {
	return &BotController{
		policy: policy,
		delay:  delay,
		logger: logger.WithField("bot", policy.Name()),
		responses: map[string]func() interface{}{
			KeyMulliganYesNo:        func() interface{} { return policy.WantsToMulligan() },
			KeyMulliganHandIndex:    func() interface{} { return policy.MulliganHandIndex() },
			KeyMulliganFaceUpIndex:  func() interface{} { return policy.MulliganFaceUpIndex() },
			KeyChooseDirection:      func() interface{} { return policy.PreferredStartDirection() },
			KeySelectAction:         func() interface{} { return policy.Action() },
			KeySelectCardsToPlay:    func() interface{} { return policy.CardPlayIndices() },
			KeyGiveAway:             func() interface{} { return policy.CardGiveawayIndex() },
			KeyGiveAwaySelectPlayer: func() interface{} { return policy.CardGiveawayPlayerIndex() },
			KeyJokerSelectPlayer:    func() interface{} { return policy.JokerTargetIndex() },
			KeyVoteForWinner:        func() interface{} { return policy.VoteForWinnerIndex() },
		},
	}
}

// Policy returns the policy answering for the bot
func (b *BotController) Policy() Policy {
	return b.policy
}

// GetResponse answers every prompt from the policy
// A bot cannot be asked again, so a rejected answer is an error
func (b *BotController) GetResponse(prompts []*Prompt, validators []Validator) ([]interface{}, error) {
	if len(prompts) != len(validators) {
		return nil, ErrPromptMismatch
	}

	if b.delay > 0 {
		time.Sleep(b.delay)
	}

	responses := make([]interface{}, len(prompts))
	for i, prompt := range prompts {
		if !b.policy.IsReady() {
			return nil, ErrBotNotReady
		}

		getter, ok := b.responses[prompt.Key]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownPrompt, prompt.Key)
		}

		response := getter()
		if !validators[i].Accept(response) {
			b.logger.WithFields(logrus.Fields{
				"prompt":   prompt.Key,
				"response": response,
			}).Warn("bot response rejected")
			return nil, fmt.Errorf("%w: %v for %s", ErrInvalidBotResponse, response, prompt.Key)
		}

		b.logger.WithFields(logrus.Fields{
			"prompt":   prompt.Key,
			"response": response,
		}).Debug("bot answered")
		responses[i] = response
	}

	return responses, nil
}
