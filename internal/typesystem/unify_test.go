package typesystem

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/funvibe/funxy/internal/token"
)

func noTok() token.Token { return token.Token{Line: 1, Column: 1} }

func TestUnifyBaseAtoms(t *testing.T) {
	assert.NoError(t, Unify(Int(), Int(), noTok()))
	assert.NoError(t, Unify(String(), String(), noTok()))
	assert.Error(t, Unify(Int(), String(), noTok()))
}

func TestUnifyVarBindsToConstructor(t *testing.T) {
	v := NewVar()
	assert.NoError(t, Unify(v, Int(), noTok()))
	assert.Equal(t, "int", Find(v).String())
}

func TestUnifyPtr(t *testing.T) {
	a, b := NewVar(), NewVar()
	assert.NoError(t, Unify(Ptr(a), Ptr(b), noTok()))
	assert.NoError(t, Unify(a, Int(), noTok()))
	assert.Equal(t, "int", Find(b).String())
}

func TestUnifyFunArityMismatch(t *testing.T) {
	f1 := Fun([]*Term{Int()}, Int())
	f2 := Fun([]*Term{Int(), Int()}, Int())
	assert.Error(t, Unify(f1, f2, noTok()))
}

func TestUnifyFunPairwise(t *testing.T) {
	p1, p2 := NewVar(), NewVar()
	r1 := NewVar()
	f1 := Fun([]*Term{p1, p2}, r1)
	f2 := Fun([]*Term{Int(), String()}, Int())

	assert.NoError(t, Unify(f1, f2, noTok()))
	assert.Equal(t, "int", Find(p1).String())
	assert.Equal(t, "string", Find(p2).String())
	assert.Equal(t, "int", Find(r1).String())
}

func TestFindPathCompression(t *testing.T) {
	a, b, c := NewVar(), NewVar(), NewVar()
	assert.NoError(t, Unify(a, b, noTok()))
	assert.NoError(t, Unify(b, c, noTok()))
	assert.NoError(t, Unify(c, Int(), noTok()))
	assert.Equal(t, Find(a), Find(b))
	assert.Equal(t, Find(b), Find(c))
	assert.Same(t, Find(c), a.parent)
	assert.Equal(t, "int", Find(a).String())
}
