// Package skeletal shows simulated multiple inheritance through a skeletal
// implementation.
//
// A Car contract has shared behaviour (start, run, stop) and one primitive,
// DescribeEngine. Engine families are skeletal implementations: they describe
// an engine in terms of two finer primitives left to concrete delegators.
// Concrete cars hold a private delegator and forward every Car call to it,
// which leaves them free to embed unrelated state such as Accessories.
package skeletal
