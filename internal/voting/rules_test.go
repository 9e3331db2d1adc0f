package voting_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/votesim/internal/voting"
)

var layout = []float64{0.0, 0.3, 0.5, 1.0}

func mustVote(r voting.Rule, candidates []float64, position float64) voting.Vote {
	v, err := r.Vote(candidates, position)
	Expect(err).NotTo(HaveOccurred())
	return v
}

var _ = Describe("Plurality", func() {
	rule := voting.NewPlurality()

	It("marks only the closest candidate", func() {
		Expect(mustVote(rule, layout, 0.35).Scores).To(Equal([]float64{0, 1, 0, 0}))
	})

	It("marks every tied candidate", func() {
		Expect(mustVote(rule, []float64{0, 1}, 0.5).Scores).To(Equal([]float64{1, 1}))
	})

	It("credits the full weight to each tied candidate", func() {
		agg := rule.NewAggregate(2)
		agg.Add(mustVote(rule, []float64{0, 1}, 0.5), 2)
		Expect(agg).To(BeEquivalentTo(voting.ScoreTally{2, 2}))
		Expect(agg.Winner()).To(Equal(0))
	})

	It("rejects an empty candidate set", func() {
		_, err := rule.Vote(nil, 0)
		Expect(err).To(MatchError(voting.ErrEmptyCandidates))
	})
})

var _ = Describe("Approval", func() {
	rule := voting.NewApproval()

	It("falls off quadratically from closest to farthest", func() {
		Expect(mustVote(rule, []float64{0, 0.5, 1}, 0).Scores).To(Equal([]float64{1, 0.25, 0}))
	})

	It("splits evenly when all candidates are equidistant", func() {
		Expect(mustVote(rule, []float64{0, 1}, 0.5).Scores).To(Equal([]float64{0.5, 0.5}))
	})

	It("gives a lone candidate a score of one", func() {
		Expect(mustVote(rule, []float64{0.7}, -0.2).Scores).To(Equal([]float64{1}))
	})
})

var _ = Describe("Borda", func() {
	rule := voting.NewBorda()

	It("scores n for the closest down to 1 for the farthest", func() {
		Expect(mustVote(rule, layout, 0.35).Scores).To(Equal([]float64{2, 4, 3, 1}))
	})

	It("gives equidistant candidates the same score", func() {
		Expect(mustVote(rule, []float64{0, 1}, 0.5).Scores).To(Equal([]float64{2, 2}))
	})

	It("does not shift ranks after a tie", func() {
		Expect(mustVote(rule, []float64{0, 1, 2}, 1).Scores).To(Equal([]float64{2, 3, 2}))
	})
})

var _ = Describe("every rule", func() {
	registry := voting.NewRegistry(nil)

	for _, name := range voting.Systems {
		It("picks a winner inside the candidate range for "+name, func() {
			rule, err := registry.Get(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(rule.Name()).To(Equal(name))

			agg := rule.NewAggregate(len(layout))
			for i := 0; i <= 30; i++ {
				p := -1 + float64(i)*0.1
				agg.Add(mustVote(rule, layout, p), float64(i%7)+0.5)
			}
			Expect(agg.Winner()).To(And(BeNumerically(">=", 0), BeNumerically("<", len(layout))))
		})

		It("elects a lone candidate for "+name, func() {
			rule, err := registry.Get(name)
			Expect(err).NotTo(HaveOccurred())

			agg := rule.NewAggregate(1)
			for _, p := range []float64{-1, 0, 0.4, 2} {
				agg.Add(mustVote(rule, []float64{0.4}, p), 1)
			}
			Expect(agg.Winner()).To(Equal(0))
		})
	}

	It("reports unknown systems", func() {
		_, err := registry.Get("condorcet")
		Expect(errors.Is(err, voting.ErrUnknownSystem)).To(BeTrue())
	})

	It("lists the registered names", func() {
		Expect(registry.Names()).To(ConsistOf(voting.Systems))
	})
})
