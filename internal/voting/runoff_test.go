package voting_test

import (
	"errors"
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/votesim/internal/voting"
)

var _ = Describe("InstantRunoff", func() {
	var (
		interner *voting.Interner
		rule     *voting.InstantRunoff
	)

	BeforeEach(func() {
		interner = voting.NewInterner()
		rule = voting.NewInstantRunoff(interner)
	})

	It("ranks candidates by distance", func() {
		Expect(mustVote(rule, layout, 0.35).Ranking.Order()).To(Equal([]int{1, 2, 0, 3}))
	})

	It("repeats the first tied index on an exact tie", func() {
		Expect(mustVote(rule, layout, 0.5).Ranking.Order()).To(Equal([]int{2, 1, 0, 0}))
	})

	It("shares one ranking between equal ballots", func() {
		a := mustVote(rule, layout, 0.31)
		b := mustVote(rule, layout, 0.33)
		Expect(a.Ranking).To(BeIdenticalTo(b.Ranking))
		Expect(interner.Len()).To(Equal(1))

		agg := voting.NewRunoffTally(len(layout))
		agg.Add(a, 1)
		agg.Add(b, 2)
		Expect(agg.Buckets()).To(Equal(1))
		Expect(agg.Weight(a.Ranking)).To(Equal(3.0))
	})

	It("eliminates until a single candidate remains", func() {
		agg := rule.NewAggregate(len(layout)).(*voting.RunoffTally)
		agg.Add(mustVote(rule, layout, 0.0), 1)
		agg.Add(mustVote(rule, layout, 0.3), 3)
		agg.Add(mustVote(rule, layout, 0.5), 4)
		agg.Add(mustVote(rule, layout, 1.0), 2)

		res := agg.Tabulate()
		Expect(res.Eliminated).To(Equal([]int{0, 3, 1}))
		Expect(res.Rounds).To(HaveLen(3))
		Expect(res.Rounds[0]).To(Equal([]float64{1, 3, 4, 2}))
		Expect(res.Rounds[2]).To(Equal([]float64{0, 4, 6, 0}))
		Expect(res.Winner).To(Equal(2))
		Expect(agg.Winner()).To(Equal(2))
	})

	It("returns the first maximum of the last round on a two-way tie", func() {
		agg := voting.NewRunoffTally(2)
		agg.Add(mustVote(rule, []float64{0, 1}, 0), 1)
		agg.Add(mustVote(rule, []float64{0, 1}, 1), 1)

		res := agg.Tabulate()
		Expect(res.Eliminated).To(Equal([]int{0}))
		Expect(res.Winner).To(Equal(0))
	})

	It("elects a lone candidate without eliminating", func() {
		agg := voting.NewRunoffTally(1)
		agg.Add(mustVote(rule, []float64{0.2}, 0.9), 1)

		res := agg.Tabulate()
		Expect(res.Winner).To(Equal(0))
		Expect(res.Eliminated).To(BeEmpty())
	})
})

var _ = Describe("Interner", func() {
	It("returns the same ranking for equal content", func() {
		in := voting.NewInterner()
		a, err := in.Intern([]int{2, 0, 1})
		Expect(err).NotTo(HaveOccurred())
		b, err := in.Intern([]int{2, 0, 1})
		Expect(err).NotTo(HaveOccurred())
		Expect(a).To(BeIdenticalTo(b))
	})

	It("keeps its own copy of the ranking", func() {
		in := voting.NewInterner()
		order := []int{1, 0}
		r, err := in.Intern(order)
		Expect(err).NotTo(HaveOccurred())
		order[0] = 0
		Expect(r.Order()).To(Equal([]int{1, 0}))
	})

	It("fails on a hash collision with different content", func() {
		in := voting.NewInterner()
		// both read as 3 in base 2
		_, err := in.Intern([]int{0, 3})
		Expect(err).NotTo(HaveOccurred())

		_, err = in.Intern([]int{1, 1})
		Expect(err).To(MatchError(voting.ErrInternConflict))

		var ie *voting.InternError
		Expect(errors.As(err, &ie)).To(BeTrue())
		Expect(ie.Existing).To(Equal([]int{0, 3}))
		Expect(ie.Incoming).To(Equal([]int{1, 1}))
		Expect(in.Len()).To(Equal(1))
	})

	It("keeps full-length rankings distinct up to the length limit", func() {
		in := voting.NewInterner()
		desc := make([]int, voting.MaxRankingLen)
		for i := range desc {
			desc[i] = voting.MaxRankingLen - 1 - i
		}
		swapped := slices.Clone(desc)
		swapped[0], swapped[1] = swapped[1], swapped[0]

		a, err := in.Intern(desc)
		Expect(err).NotTo(HaveOccurred())
		b, err := in.Intern(swapped)
		Expect(err).NotTo(HaveOccurred())
		Expect(a).NotTo(BeIdenticalTo(b))
		Expect(in.Len()).To(Equal(2))
	})

	It("rejects rankings past the length limit", func() {
		in := voting.NewInterner()
		_, err := in.Intern(make([]int, voting.MaxRankingLen+1))
		Expect(err).To(MatchError(voting.ErrRankingTooLong))
		Expect(in.Len()).To(Equal(0))

		candidates := make([]float64, voting.MaxRankingLen+1)
		for i := range candidates {
			candidates[i] = float64(i) / 10
		}
		_, err = voting.NewInstantRunoff(in).Vote(candidates, 0.25)
		Expect(err).To(MatchError(voting.ErrRankingTooLong))
	})

	It("forgets everything on reset", func() {
		in := voting.NewInterner()
		a, _ := in.Intern([]int{0, 1})
		in.Reset()
		Expect(in.Len()).To(Equal(0))
		b, _ := in.Intern([]int{0, 1})
		Expect(a).NotTo(BeIdenticalTo(b))
	})
})
