// Package dice models dice with arbitrary integer faces and computes the
// exact pairwise win probabilities of a dice set.
//
// A DiceSet holds at least three dice of the same face count. ComputeMatrix
// enumerates every face pair of every ordered pair of dice; ties count for
// neither side, so P(i beats j) + P(j beats i) may be below one.
package dice
