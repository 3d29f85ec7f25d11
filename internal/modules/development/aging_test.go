package development

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ballparklabs/dynasty/internal/domain"
	"github.com/ballparklabs/dynasty/internal/rng"
)

func TestAgePlayer_Increment(t *testing.T) {
	res := testModel().AgePlayer(rng.New(1), domain.Player{Age: 24})
	assert.Equal(t, 25, res.NewAge)
}

func TestAgePlayer_NoRetirementAtOrBelow35(t *testing.T) {
	model := testModel()
	src := rng.New(3)
	for age := 18; age <= 34; age++ {
		for i := 0; i < 50; i++ {
			res := model.AgePlayer(src, domain.Player{Age: age})
			assert.False(t, res.IsRetiring, "age %d", age+1)
		}
	}
}

func TestAgePlayer_RetirementRisk(t *testing.T) {
	model := testModel()

	// Turning 36: probability 0.15. A draw just below retires, just above
	// does not.
	res := model.AgePlayer(&stubSource{floats: []float64{0.14}}, domain.Player{Age: 35})
	assert.True(t, res.IsRetiring)
	res = model.AgePlayer(&stubSource{floats: []float64{0.16}}, domain.Player{Age: 35})
	assert.False(t, res.IsRetiring)

	// Past the point where the formula exceeds 1.0 the probability clamps to
	// certainty: even the highest possible draw retires.
	res = model.AgePlayer(&stubSource{floats: []float64{0.999}}, domain.Player{Age: 44})
	assert.True(t, res.IsRetiring)
}

func TestAgePlayer_DeclineModifier(t *testing.T) {
	tests := []struct {
		age  int // age before the increment
		want float64
	}{
		{25, 0},
		{30, 0},
		{31, 0}, // turns 32, still no decline
		{32, -0.5},
		{35, -2.0},
		{39, -4.0},
	}
	model := testModel()
	for _, tt := range tests {
		res := model.AgePlayer(&stubSource{floats: []float64{0.999}}, domain.Player{Age: tt.age})
		assert.InDelta(t, tt.want, res.DeclineModifier, 1e-9, "age %d", tt.age)
	}
}
