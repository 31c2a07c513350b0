package ecs

import "testing"

// TestGenericGetComponent 测试泛型组件查询
func TestGenericGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPosition{X: 5, Y: 7})

	pos, ok := GetComponent[*testPosition](em, id)
	if !ok {
		t.Fatal("Expected to find testPosition via generic query")
	}
	if pos.X != 5 || pos.Y != 7 {
		t.Errorf("Expected (5, 7), got (%f, %f)", pos.X, pos.Y)
	}

	if _, ok := GetComponent[*testTag](em, id); ok {
		t.Error("Expected missing component lookup to fail")
	}
}

// TestGenericGetEntitiesWith 测试泛型实体查询与手写 reflect 版本一致
func TestGenericGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	a := em.CreateEntity()
	em.AddComponent(a, &testPosition{})
	em.AddComponent(a, &testTag{})

	b := em.CreateEntity()
	em.AddComponent(b, &testPosition{})

	if got := GetEntitiesWith1[*testPosition](em); len(got) != 2 {
		t.Errorf("Expected 2 entities, got %d", len(got))
	}

	got := GetEntitiesWith2[*testPosition, *testTag](em)
	if len(got) != 1 || got[0] != a {
		t.Errorf("Expected only entity %d, got %v", a, got)
	}

	if got := GetEntitiesWith3[*testPosition, *testTag, *testPosition](em); len(got) != 1 {
		t.Errorf("Expected duplicate types to behave as intersection, got %v", got)
	}
}
