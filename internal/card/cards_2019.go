package card

func groups2019() []Group {
	return []Group{
		{
			Description: "Like numbers",
			Patterns: []Pattern{
				{
					Description: "FF 1111 1111 1111 (any 3 suits)",
					VSuitCount:  3,
					Components: []Component{
						flowers(2), run(VSuit1, 1, 4), run(VSuit2, 1, 4), run(VSuit3, 1, 4),
					},
				},
				{
					Description: "11 DD 111 DDD 1111 (any 3 suits, concealed)",
					VSuitCount:  3,
					Concealed:   true,
					Components: []Component{
						run(VSuit1, 1, 2), vdragon(VDragon1, 2), run(VSuit2, 1, 3),
						vdragon(VDragon2, 3), run(VSuit3, 1, 4),
					},
				},
			},
		},
	}
}
