package card

func groups2020() []Group {
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
					Description: "FF 1111 DD 1111 DD (any 2 suits)",
					VSuitCount:  2,
					Components: []Component{
						flowers(2), run(VSuit1, 1, 4), vdragon(VDragon1, 2),
						run(VSuit2, 1, 4), vdragon(VDragon2, 2),
					},
				},
				{
					Description: "FFFFF 11 111 1111 (any 3 suits)",
					VSuitCount:  3,
					Components: []Component{
						flowers(5), run(VSuit1, 1, 2), run(VSuit2, 1, 3), run(VSuit3, 1, 4),
					},
				},
			},
		},
	}
}
