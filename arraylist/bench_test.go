package arraylist

import "testing"

func BenchmarkPush(b *testing.B) {
	l := New[int]()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		l.Push(n)
	}
}

func BenchmarkPushPop(b *testing.B) {
	l := New[int]()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		l.Push(n)
		if _, err := l.Pop(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkInsertFront(b *testing.B) {
	l := New[int](InitialCapacity(1024))
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if err := l.Insert(0, n); err != nil {
			b.Fatal(err)
		}
	}
}
