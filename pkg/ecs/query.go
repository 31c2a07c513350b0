package ecs

import "reflect"

// 泛型查询辅助函数
// 避免调用方手写 reflect.TypeOf + 类型断言的样板代码

// GetComponent 获取实体上类型为 T 的组件
// T 必须是组件的指针类型，如 *components.PositionComponent
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	comp, ok := em.GetComponent(id, reflect.TypeOf(zero))
	if !ok {
		return zero, false
	}
	typed, ok := comp.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// GetEntitiesWith1 查询拥有组件类型 T1 的所有实体
func GetEntitiesWith1[T1 any](em *EntityManager) []EntityID {
	var t1 T1
	return em.GetEntitiesWith(reflect.TypeOf(t1))
}

// GetEntitiesWith2 查询同时拥有组件类型 T1 和 T2 的所有实体
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	var t1 T1
	var t2 T2
	return em.GetEntitiesWith(reflect.TypeOf(t1), reflect.TypeOf(t2))
}

// GetEntitiesWith3 查询同时拥有组件类型 T1、T2 和 T3 的所有实体
func GetEntitiesWith3[T1, T2, T3 any](em *EntityManager) []EntityID {
	var t1 T1
	var t2 T2
	var t3 T3
	return em.GetEntitiesWith(reflect.TypeOf(t1), reflect.TypeOf(t2), reflect.TypeOf(t3))
}
