package Trees

// Tree represents A tree like structure implemented using nodes.
// Receivers that has A bool as A second return value indicates whether
// the first return value is defined. For example, if calling Min on
// an empty tree, the return value will be (x T, false bool). In this
// case the value of x should be undefined.
// If an implementation didn't specify anything special, then the implemented
// receivers follows the behaviors defined here. Methods implemented recursively
// should be noted, otherwise functions are implemented iteratively.
type Tree[T any] interface {
	//Erase v from the Tree. Returning true if v was present, false otherwise.
	Erase(v T) bool
	//Min element of the tree.
	Min() (T, bool)
	//Max element of the tree.
	Max() (T, bool)
	//Has element v.
	Has(v T) bool
	//Size of the tree.
	Size() uint
	//Empty reports Size()==0.
	Empty() bool
	//Clear removes every element, keeping the tree usable.
	Clear()
	//InOrder returns A closure function f acting like an iterator. f
	//gives nodes in the in-order traversal of the tree.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	//The tree must not be modified during the iteration of f, otherwise
	//it could corrupt the tree. There will be no panic if such cases
	//happens so design the algorithm with this in mind.
	InOrder() func() (T, bool)
	//Corrupt returns whether the tree has corrupt structures, when the links
	//or colors at some node violate the properties of that specific
	//implementation. This is to be distinguished from whether the tree is
	//balanced or not.
	Corrupt() bool
}

var _ Tree[int] = (*RBTree[int])(nil)
