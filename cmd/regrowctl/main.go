// Command regrowctl demonstrates and benchmarks growable arrays backed by
// allocators with and without in-place resize support.
package main

func main() {
	execute()
}
